// Package vision implements the description enrichment gateway against the
// Anthropic Messages API. Given an item's title and image reference it
// produces a short listing description. Retry and timeout policy lives
// here, not in the lifecycle engine: the engine only records success.
package vision

import (
	"context"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Config holds gateway call policy.
type Config struct {
	Model       string
	Timeout     time.Duration
	MaxAttempts int
}

// Client generates item descriptions via the Anthropic API.
type Client struct {
	client anthropic.Client
	cfg    Config
}

// New creates a new enrichment client.
func New(apiKey string, cfg Config) *Client {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Client{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		cfg:    cfg,
	}
}

// Describe returns a generated description for the item, or an error after
// all attempts are exhausted. Each attempt runs under its own timeout.
func (c *Client) Describe(ctx context.Context, title, imageRef string) (string, error) {
	prompt := buildPrompt(title, imageRef)

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff(attempt)):
			}
		}

		text, err := c.call(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("describe %q after %d attempts: %w", title, c.cfg.MaxAttempts, lastErr)
}

func (c *Client) call(ctx context.Context, prompt string) (string, error) {
	callCtx := ctx
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	msg, err := c.client.Messages.New(callCtx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.cfg.Model),
		MaxTokens: 256,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("messages api: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty response")
	}

	text := strings.TrimSpace(msg.Content[0].Text)
	if text == "" {
		return "", fmt.Errorf("blank description in response")
	}
	return text, nil
}

func buildPrompt(title, imageRef string) string {
	return fmt.Sprintf(`You write listings for a campus lost-and-found board.

An item titled %q was photographed; the photo is stored at %q.

Write a neutral 1-2 sentence description a student could use to recognize the item. Mention only what the title implies; do not invent serial numbers, names, or locations. Output the description text only, no preamble.`, title, imageRef)
}

func backoff(attempt int) time.Duration {
	return time.Duration(attempt-1) * 500 * time.Millisecond
}
