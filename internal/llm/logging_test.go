package llm

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/abhisek/notequiz/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRepo captures appended events. Query methods are not used here.
type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsEvent(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: []byte("7"),
		Usage:   Usage{InputTokens: 120, OutputTokens: 1},
	})
	repo := &recordingRepo{}
	p := WithLogging(mock, "mock", repo, nil)

	ctx := WithPurpose(context.Background(), PurposeQuestionEval)
	resp, err := p.Generate(ctx, Request{
		Messages: []Message{{Role: RoleUser, Content: "rate these questions"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "7", resp.Text())

	require.Len(t, repo.events, 1)
	e := repo.events[0]
	assert.Equal(t, "mock", e.Provider)
	assert.Equal(t, "mock", e.Model)
	assert.Equal(t, PurposeQuestionEval, e.Purpose)
	assert.True(t, e.Success)
	assert.Equal(t, 120, e.InputTokens)
	assert.Equal(t, 1, e.OutputTokens)
	assert.Equal(t, "7", e.ResponseBody)
	assert.Contains(t, e.RequestBody, "[user]\nrate these questions")
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: errors.New("quota exhausted")})
	repo := &recordingRepo{}
	p := WithLogging(mock, "mock", repo, nil)

	_, err := p.Generate(context.Background(), Request{Model: "gemini-pro"})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	e := repo.events[0]
	assert.False(t, e.Success)
	assert.Equal(t, "quota exhausted", e.ErrorMessage)
	assert.Equal(t, "gemini-pro", e.Model)
	assert.Equal(t, "unknown", e.Purpose)
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	mock := NewMockProvider(TextResponse("Q: a\nA: b"))
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(mock, "mock", repo, logger)

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "Q: a\nA: b", resp.Text())
	assert.Contains(t, buf.String(), "failed to record LLM request event")
}

func TestLogging_NilRepo(t *testing.T) {
	mock := NewMockProvider(TextResponse("5"))
	p := WithLogging(mock, "mock", nil, nil)

	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}

func TestLogging_RecordsSchemaInRequestBody(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: []byte(`{"question":"Q","answer":"A"}`)})
	repo := &recordingRepo{}
	p := WithLogging(mock, "mock", repo, nil)

	_, err := p.Generate(context.Background(), Request{
		System:   "be brief",
		Messages: []Message{{Role: RoleUser, Content: "one pair please"}},
		Schema:   pairSchema("logging-pair"),
	})
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	body := repo.events[0].RequestBody
	assert.Contains(t, body, "[system]\nbe brief")
	assert.Contains(t, body, "[user]\none pair please")
	assert.Contains(t, body, "[schema: logging-pair]")
	assert.Contains(t, body, `"required":["question","answer"]`)
}

func TestIntFromInfo(t *testing.T) {
	info := map[string]any{
		"int":     7,
		"int32":   int32(8),
		"int64":   int64(9),
		"float64": float64(10),
		"string":  "11",
	}
	assert.Equal(t, 7, intFromInfo(info, "int"))
	assert.Equal(t, 8, intFromInfo(info, "int32"))
	assert.Equal(t, 9, intFromInfo(info, "int64"))
	assert.Equal(t, 10, intFromInfo(info, "float64"))
	assert.Equal(t, 0, intFromInfo(info, "string"))
	assert.Equal(t, 0, intFromInfo(info, "missing"))
}
