package watcher

import "context"

// Watcher monitors a directory for new transcript files
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler runs the summarization pipeline on one file
type EventHandler func(ctx context.Context, filePath string) error
