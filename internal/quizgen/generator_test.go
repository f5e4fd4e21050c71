package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/notequiz/internal/llm"
)

func structuredConfig() Config {
	cfg := DefaultConfig()
	cfg.Structured = true
	return cfg
}

func TestGenerate_StructuredUsesSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		`{"questions":[{"question":" What is ATP? ","answer":"Energy currency"},{"question":"Where is DNA?","answer":"Nucleus"}]}`,
	)})
	g := NewGenerator(llm.NewTextCompleter(mock, llm.CompletionOptions{}), structuredConfig(), nil)

	pairs, err := g.Generate(context.Background(), testDocument, 1)
	require.NoError(t, err)
	assert.Equal(t, []QAPair{
		{Question: "What is ATP?", Answer: "Energy currency"},
		{Question: "Where is DNA?", Answer: "Nucleus"},
	}, pairs)

	require.Len(t, mock.Calls, 1)
	assert.Same(t, questionSetSchema, mock.Calls[0].Schema)
	assert.Contains(t, mock.Prompts()[0], `"questions" array`)
	assert.Contains(t, mock.Prompts()[0], testDocument)
}

func TestGenerate_StructuredMismatchIsEmptySet(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("Q: plain text\nA: not json"))
	g := NewGenerator(llm.NewTextCompleter(mock, llm.CompletionOptions{}), structuredConfig(), nil)

	pairs, err := g.Generate(context.Background(), testDocument, 1)
	require.NoError(t, err)
	assert.NotNil(t, pairs)
	assert.Empty(t, pairs)
}

func TestGenerate_StructuredFailurePropagates(t *testing.T) {
	boom := errors.New("upstream down")
	mock := llm.NewMockProvider(llm.MockResponse{Err: boom})
	g := NewGenerator(llm.NewTextCompleter(mock, llm.CompletionOptions{}), structuredConfig(), nil)

	_, err := g.Generate(context.Background(), testDocument, 1)
	assert.ErrorIs(t, err, boom)
}

func TestGenerate_StructuredFallsBackToText(t *testing.T) {
	completer := &scriptedCompleter{
		generate: func(n int) (string, error) { return questionSet(n), nil },
	}
	g := NewGenerator(completer, structuredConfig(), nil)

	pairs, err := g.Generate(context.Background(), testDocument, 1)
	require.NoError(t, err)
	assert.Equal(t, parsedSet(1), pairs)
	assert.Contains(t, completer.prompts[0], "Q: [question]")
}

func TestRun_StructuredOfflineProviderAccepts(t *testing.T) {
	completer := llm.NewTextCompleter(llm.NewOfflineProvider(), llm.CompletionOptions{})

	res, err := New(completer, structuredConfig(), nil).RunDetailed(context.Background(), testDocument)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccepted, res.Outcome)
	assert.Equal(t, 1, res.Attempts)
	assert.Len(t, res.Questions, 5)
}

func TestDecodeQuestionSet(t *testing.T) {
	pairs, dropped, err := decodeQuestionSet(json.RawMessage(
		`{"questions":[{"question":"Kept?","answer":"yes"},{"question":"  ","answer":"orphan"},{"question":"No answer","answer":""}]}`,
	))
	require.NoError(t, err)
	assert.Equal(t, []QAPair{{Question: "Kept?", Answer: "yes"}}, pairs)
	assert.Equal(t, 2, dropped)

	pairs, _, err = decodeQuestionSet(json.RawMessage(`Q: nope`))
	assert.Error(t, err)
	assert.Equal(t, []QAPair{}, pairs)
}
