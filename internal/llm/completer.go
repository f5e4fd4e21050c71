package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// CompletionOptions tune every completion a TextCompleter issues.
type CompletionOptions struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds a single completion. Zero means no limit.
	Timeout time.Duration
}

// CompletionOptionsFrom extracts completion options from a Config.
func CompletionOptionsFrom(cfg Config) CompletionOptions {
	return CompletionOptions{
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout,
	}
}

// TextCompleter adapts a Provider to the plain prompt-in, text-out contract
// the quiz workflow consumes. Each call is one blocking round-trip; the
// completer adds no retry of its own.
type TextCompleter struct {
	provider Provider
	opts     CompletionOptions
}

// NewTextCompleter creates a TextCompleter over provider.
func NewTextCompleter(provider Provider, opts CompletionOptions) *TextCompleter {
	return &TextCompleter{provider: provider, opts: opts}
}

// Complete sends prompt as a single user message to model (the provider
// default when empty) and returns the raw response text.
func (c *TextCompleter) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.generate(ctx, model, prompt, nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// CompleteJSON is Complete in the provider's structured output mode. The
// reply is validated against schema; a mismatch is an *ErrInvalidResponse.
func (c *TextCompleter) CompleteJSON(ctx context.Context, model, prompt string, schema *Schema) (json.RawMessage, error) {
	if schema == nil {
		return nil, fmt.Errorf("complete json: nil schema")
	}
	resp, err := c.generate(ctx, model, prompt, schema)
	if err != nil {
		return nil, err
	}
	return resp.Content, nil
}

func (c *TextCompleter) generate(ctx context.Context, model, prompt string, schema *Schema) (*Response, error) {
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	return c.provider.Generate(ctx, Request{
		Model:       model,
		Messages:    []Message{{Role: RoleUser, Content: prompt}},
		Schema:      schema,
		MaxTokens:   c.opts.MaxTokens,
		Temperature: c.opts.Temperature,
	})
}

// ModelID reports the underlying provider's default model.
func (c *TextCompleter) ModelID() string {
	return c.provider.ModelID()
}
