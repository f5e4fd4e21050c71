package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestTextCompleter_Complete(t *testing.T) {
	mock := NewMockProvider(TextResponse("Q: What is osmosis?\nA: Diffusion of water"))
	c := NewTextCompleter(mock, CompletionOptions{MaxTokens: 512, Temperature: 0.3})

	text, err := c.Complete(context.Background(), "", "quiz me")
	require.NoError(t, err)
	assert.Equal(t, "Q: What is osmosis?\nA: Diffusion of water", text)

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Empty(t, req.System)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "quiz me"}}, req.Messages)
	assert.Equal(t, 512, req.MaxTokens)
	assert.InDelta(t, 0.3, req.Temperature, 1e-9)
	assert.Empty(t, req.Model)
}

func TestTextCompleter_ModelOverride(t *testing.T) {
	mock := NewMockProvider(TextResponse("8"))
	c := NewTextCompleter(mock, CompletionOptions{})

	_, err := c.Complete(context.Background(), "gemini-pro", "score this")
	require.NoError(t, err)
	assert.Equal(t, "gemini-pro", mock.Calls[0].Model)
	assert.Equal(t, "mock", c.ModelID())
}

func TestTextCompleter_PropagatesError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	c := NewTextCompleter(mock, CompletionOptions{})

	_, err := c.Complete(context.Background(), "", "quiz me")
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestTextCompleter_Timeout(t *testing.T) {
	c := NewTextCompleter(blockingProvider{}, CompletionOptions{Timeout: 10 * time.Millisecond})

	_, err := c.Complete(context.Background(), "", "quiz me")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTextCompleter_CompleteJSON(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"question":"What is osmosis?","answer":"Diffusion of water"}`)})
	c := NewTextCompleter(mock, CompletionOptions{})
	schema := pairSchema("completer-pair")

	raw, err := c.CompleteJSON(context.Background(), "", "quiz me", schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{"question":"What is osmosis?","answer":"Diffusion of water"}`, string(raw))

	require.Len(t, mock.Calls, 1)
	assert.Same(t, schema, mock.Calls[0].Schema)
}

func TestTextCompleter_CompleteJSONRejectsMismatch(t *testing.T) {
	mock := NewMockProvider(TextResponse("Q: What is osmosis?\nA: Diffusion of water"))
	c := NewTextCompleter(mock, CompletionOptions{})

	_, err := c.CompleteJSON(context.Background(), "", "quiz me", pairSchema("completer-mismatch"))
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestTextCompleter_CompleteJSONNeedsSchema(t *testing.T) {
	mock := NewMockProvider()
	c := NewTextCompleter(mock, CompletionOptions{})

	_, err := c.CompleteJSON(context.Background(), "", "quiz me", nil)
	assert.Error(t, err)
	assert.Zero(t, mock.CallCount())
}

func TestTextCompleter_CompleteSendsNoSchema(t *testing.T) {
	mock := NewMockProvider(TextResponse("8"))
	c := NewTextCompleter(mock, CompletionOptions{})

	_, err := c.Complete(context.Background(), "", "score this")
	require.NoError(t, err)
	assert.Nil(t, mock.Calls[0].Schema)
}
