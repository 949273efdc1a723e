package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/srt-summarizer/internal/config"
	"github.com/nguyentantai21042004/srt-summarizer/internal/llm"
	"github.com/nguyentantai21042004/srt-summarizer/internal/logger"
	"github.com/nguyentantai21042004/srt-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/srt-summarizer/internal/watcher"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "summarizer <input_file> [output_file]",
		Short: "Summarize a transcript or text file into bullet points",
		Long: `Summarize a long .srt or .txt file into a short bullet-point summary
using an OpenAI-compatible generation endpoint.

The input is split into overlapping word windows, each window is
summarized independently, and the partial summaries are combined into
one final summary. SRT files have sequence numbers and timestamps
stripped first.

Examples:
  summarizer ./lecture.srt
  summarizer ./notes.txt ./out/summary.txt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid past this point; runtime failures
			// should not dump the usage block.
			cmd.SilenceUsage = true

			outputPath := ""
			if len(args) == 2 {
				outputPath = args[1]
			}
			return runSummarize(cmd.Context(), configPath, args[0], outputPath)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to YAML config file")
	cmd.AddCommand(newWatchCmd(&configPath))

	return cmd
}

func runSummarize(ctx context.Context, configPath, inputPath, outputPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logging.Level)

	// Fail before touching the generation service when the input is gone.
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	gen := llm.New(cfg.LLM, log)
	s := summarizer.New(cfg, gen, log)

	_, err = s.Summarize(ctx, inputPath, outputPath)
	return err
}

func newWatchCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch a directory and summarize new transcript files",
		Long: `Monitor the configured input directory for new .srt and .txt files
and run the summarization pipeline on each one, writing summaries to
the configured output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runWatch(cmd.Context(), *configPath)
		},
	}
}

func runWatch(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ValidateWatch(); err != nil {
		return err
	}
	log := logger.New(cfg.Logging.Level)

	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		return fmt.Errorf("create input directory: %w", err)
	}
	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	gen := llm.New(cfg.LLM, log)
	s := summarizer.New(cfg, gen, log)

	handler := func(ctx context.Context, inputPath string) error {
		_, err := s.Summarize(ctx, inputPath, outputInDir(cfg.Paths.Output, inputPath))
		return err
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	log.Info(ctx, "Summarizer watch mode ready")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Model: %s at %s", cfg.LLM.Model, cfg.LLM.BaseURL)
	log.Info(ctx, "Press Ctrl+C to stop")

	if err := w.Start(ctx); err != nil && err != context.Canceled {
		return err
	}

	log.Info(ctx, "Summarizer stopped")
	return nil
}

// outputInDir places <stem>_summary.txt for inputPath inside dir
func outputInDir(dir, inputPath string) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(dir, stem+"_summary.txt")
}
