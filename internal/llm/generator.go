package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sethvargo/go-retry"
)

const (
	backoffBase = 500 * time.Millisecond
	backoffMax  = 15 * time.Second
)

// Generate sends one prompt and returns the generated text. Transient
// failures (connection errors, 429, 5xx) are retried with jittered
// exponential backoff up to the configured attempt count; the built-in
// client retry is disabled so this is the only retry layer.
func (g *implGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	backoff := retry.NewExponential(backoffBase)
	backoff = retry.WithMaxDuration(backoffMax, backoff)
	backoff = retry.WithJitter(100*time.Millisecond, backoff)
	backoff = retry.WithMaxRetries(uint64(g.maxRetries), backoff)

	var text string
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		reqCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		resp, err := g.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
			Model: openai.ChatModel(g.model),
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
		}, option.WithMaxRetries(0))
		if err != nil {
			if isRetryable(err) {
				g.logger.Warn(ctx, "Generation request failed, retrying: %v", err)
				return retry.RetryableError(err)
			}
			return err
		}

		if len(resp.Choices) == 0 {
			return fmt.Errorf("response from %s contains no choices", g.model)
		}

		text = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	return text, nil
}

// isRetryable classifies errors worth another attempt. API errors are
// retried on rate limits and server-side failures; transport-level
// errors and per-request timeouts are treated as transient.
func isRetryable(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 408 || apiErr.StatusCode == 429 || apiErr.StatusCode >= 500
	}

	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
