package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage("Q: What do mitochondria produce?\nA: ATP"),
			Usage:   Usage{InputTokens: 310, OutputTokens: 12, TotalTokens: 322},
		},
		TextResponse("9"),
	)

	gen, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "write the quiz"}}})
	require.NoError(t, err)
	assert.Equal(t, "Q: What do mitochondria produce?\nA: ATP", gen.Text())
	assert.Equal(t, 310, gen.Usage.InputTokens)
	assert.Equal(t, "end", gen.StopReason)

	eval, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "grade the quiz"}}})
	require.NoError(t, err)
	assert.Equal(t, "9", eval.Text())
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(TextResponse("7"))

	_, err := mock.Generate(context.Background(), Request{
		System:   "You grade study quizzes.",
		Messages: []Message{{Role: RoleUser, Content: "Q: Define osmosis.\nA: Water diffusion"}},
	})
	require.NoError(t, err)

	require.Equal(t, 1, mock.CallCount())
	assert.Equal(t, "You grade study quizzes.", mock.Calls[0].System)
	assert.Equal(t, []string{"Q: Define osmosis.\nA: Water diffusion"}, mock.Prompts())
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)
}

func TestMockProvider_EnforcesSchema(t *testing.T) {
	mock := NewMockProvider(TextResponse("Q: not json\nA: at all"))

	_, err := mock.Generate(context.Background(), Request{Schema: pairSchema("mock-pair")})
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestMockProvider_ModelID(t *testing.T) {
	assert.Equal(t, "mock", NewMockProvider().ModelID())
}

func TestOfflineProvider_AnswersByPurpose(t *testing.T) {
	p := NewOfflineProvider()

	genCtx := WithPurpose(context.Background(), PurposeQuestionGen)
	gen, err := p.Generate(genCtx, Request{Messages: []Message{{Role: RoleUser, Content: "notes"}}})
	require.NoError(t, err)
	assert.Equal(t, len(offlinePairs), strings.Count(gen.Text(), "Q: "))
	assert.Equal(t, len(offlinePairs), strings.Count(gen.Text(), "A: "))

	evalCtx := WithPurpose(context.Background(), PurposeQuestionEval)
	eval, err := p.Generate(evalCtx, Request{Messages: []Message{{Role: RoleUser, Content: "grade"}}})
	require.NoError(t, err)
	assert.Equal(t, "8", eval.Text())
}

func TestOfflineProvider_StructuredGeneration(t *testing.T) {
	schema := &Schema{
		Name: "offline-question-set",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"questions"},
			"properties": map[string]any{
				"questions": map[string]any{
					"type":  "array",
					"items": pairSchema("unused").Definition,
				},
			},
		},
	}

	ctx := WithPurpose(context.Background(), PurposeQuestionGen)
	resp, err := NewOfflineProvider().Generate(ctx, Request{Schema: schema})
	require.NoError(t, err)

	var set struct {
		Questions []struct{ Question, Answer string }
	}
	require.NoError(t, json.Unmarshal(resp.Content, &set))
	assert.Len(t, set.Questions, len(offlinePairs))
}

func TestOfflineProvider_QueueTakesPrecedence(t *testing.T) {
	p := NewOfflineProvider()
	p.AddResponse(TextResponse("3"))

	ctx := WithPurpose(context.Background(), PurposeQuestionEval)
	first, err := p.Generate(ctx, Request{})
	require.NoError(t, err)
	assert.Equal(t, "3", first.Text())

	second, err := p.Generate(ctx, Request{})
	require.NoError(t, err)
	assert.Equal(t, "8", second.Text())
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))

	assert.Equal(t, PurposeQuestionGen, PurposeFrom(WithPurpose(ctx, PurposeQuestionGen)))
	assert.Equal(t, PurposeQuestionEval, PurposeFrom(WithPurpose(ctx, PurposeQuestionEval)))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
