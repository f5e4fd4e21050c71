package quizgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/notequiz/internal/llm"
)

const testDocument = "Photosynthesis converts light to chemical energy. Mitochondria produce ATP."

// questionSet returns a distinct two-pair generation reply for attempt n.
func questionSet(n int) string {
	return fmt.Sprintf("Q: Question %d.1?\nA: Answer %d.1\nQ: Question %d.2?\nA: Answer %d.2\n", n, n, n, n)
}

func parsedSet(n int) []QAPair {
	return ParseQuestions(questionSet(n))
}

// scriptedMock queues one generation reply and one score per attempt.
func scriptedMock(scores ...string) *llm.MockProvider {
	mock := llm.NewMockProvider()
	for i, s := range scores {
		mock.AddResponse(llm.TextResponse(questionSet(i + 1)))
		mock.AddResponse(llm.TextResponse(s))
	}
	return mock
}

func newTestWorkflow(mock *llm.MockProvider) *Workflow {
	return New(llm.NewTextCompleter(mock, llm.CompletionOptions{}), DefaultConfig(), nil)
}

func TestRun_AcceptedOnSecondAttempt(t *testing.T) {
	mock := scriptedMock("4", "8")
	res, err := newTestWorkflow(mock).RunDetailed(context.Background(), testDocument)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, 8, res.BestScore)
	assert.Equal(t, OutcomeAccepted, res.Outcome)
	assert.Equal(t, parsedSet(2), res.Questions)
	assert.Equal(t, []int{4, 8}, res.Scores())
	assert.Equal(t, 4, mock.CallCount())
}

func TestRun_BudgetExhausted(t *testing.T) {
	mock := scriptedMock("3", "4", "5")
	res, err := newTestWorkflow(mock).RunDetailed(context.Background(), testDocument)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, 5, res.BestScore)
	assert.Equal(t, OutcomeExhausted, res.Outcome)
	assert.Equal(t, parsedSet(3), res.Questions)
	assert.Equal(t, 6, mock.CallCount())
}

func TestRun_AcceptedImmediately(t *testing.T) {
	mock := scriptedMock("9")
	res, err := newTestWorkflow(mock).RunDetailed(context.Background(), testDocument)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 9, res.BestScore)
	assert.Equal(t, OutcomeAccepted, res.Outcome)
	assert.Equal(t, parsedSet(1), res.Questions)
}

func TestRun_NoGenerationAfterAcceptance(t *testing.T) {
	// Extra replies stay queued if the loop wrongly continues.
	mock := scriptedMock("8", "10")
	res, err := newTestWorkflow(mock).RunDetailed(context.Background(), testDocument)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 2, mock.CallCount(), "one generation and one evaluation")
	assert.Equal(t, parsedSet(1), res.Questions)
}

func TestRun_TieKeepsIncumbent(t *testing.T) {
	mock := scriptedMock("5", "5", "2")
	res, err := newTestWorkflow(mock).RunDetailed(context.Background(), testDocument)
	require.NoError(t, err)

	assert.Equal(t, 5, res.BestScore)
	assert.Equal(t, parsedSet(1), res.Questions)
	require.Len(t, res.History, 3)
	assert.True(t, res.History[0].Adopted)
	assert.False(t, res.History[1].Adopted)
	assert.False(t, res.History[2].Adopted)
}

func TestRun_ReturnsBestNotLast(t *testing.T) {
	mock := scriptedMock("6", "2", "3")
	res, err := newTestWorkflow(mock).RunDetailed(context.Background(), testDocument)
	require.NoError(t, err)

	assert.Equal(t, OutcomeExhausted, res.Outcome)
	assert.Equal(t, 6, res.BestScore)
	assert.Equal(t, parsedSet(1), res.Questions)
}

func TestRun_AcceptanceCheckedBeforeBudget(t *testing.T) {
	mock := scriptedMock("1", "2", "7")
	res, err := newTestWorkflow(mock).RunDetailed(context.Background(), testDocument)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, OutcomeAccepted, res.Outcome)
	assert.Equal(t, parsedSet(3), res.Questions)
}

func TestRun_UnparseableScoreFallsBackAndAccepts(t *testing.T) {
	mock := scriptedMock("I think it's pretty good!")
	res, err := newTestWorkflow(mock).RunDetailed(context.Background(), testDocument)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, DefaultFallbackScore, res.BestScore)
	assert.Equal(t, OutcomeAccepted, res.Outcome)
}

func TestRun_EmptyGenerationIsEvaluated(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.TextResponse("Sorry, I cannot do that."),
		llm.TextResponse("1"),
		llm.TextResponse(questionSet(2)),
		llm.TextResponse("8"),
	)
	res, err := newTestWorkflow(mock).RunDetailed(context.Background(), testDocument)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Attempts)
	require.Len(t, res.History, 2)
	assert.Empty(t, res.History[0].Questions)
	assert.Equal(t, parsedSet(2), res.Questions)

	prompts := mock.Prompts()
	require.Len(t, prompts, 4)
	assert.Contains(t, prompts[1], "(none)")
}

func TestRun_EmptyBestSetIsNotAnError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.TextResponse("no pairs at all"),
		llm.TextResponse("8"),
	)
	qs, err := newTestWorkflow(mock).Run(context.Background(), testDocument)
	require.NoError(t, err)
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
}

func TestEvaluate_StrictImprovementOnly(t *testing.T) {
	completer := &scriptedCompleter{
		evaluate: func(int) (string, error) { return "6", nil },
	}
	eval := NewEvaluator(completer, DefaultConfig(), nil)

	ev, err := eval.Evaluate(context.Background(), parsedSet(1), 5)
	require.NoError(t, err)
	assert.Equal(t, Evaluation{Score: 6, UpdatedBest: true}, ev)

	ev, err = eval.Evaluate(context.Background(), parsedSet(1), 6)
	require.NoError(t, err)
	assert.Equal(t, Evaluation{Score: 6, UpdatedBest: false}, ev)

	state := NewState(testDocument)
	state.CurrentQuestions = parsedSet(2)
	state.apply(ev)
	assert.Equal(t, 6, state.CurrentScore)
	assert.Nil(t, state.BestQuestions, "best set and score change together")
	assert.Zero(t, state.BestScore)
}

func TestRun_Invariants(t *testing.T) {
	scoreSeqs := [][]string{
		{"2", "9"},
		{"5", "3", "6"},
		{"10"},
		{"x", "1"},
		{"4", "4", "4"},
		{"6", "7"},
	}
	for _, scores := range scoreSeqs {
		t.Run(strings.Join(scores, ","), func(t *testing.T) {
			mock := scriptedMock(scores...)
			res, err := newTestWorkflow(mock).RunDetailed(context.Background(), testDocument)
			require.NoError(t, err)

			assert.LessOrEqual(t, res.Attempts, 3)
			assert.Len(t, res.History, res.Attempts)

			best := 0
			var bestSet []QAPair
			for i, a := range res.History {
				assert.Equal(t, i+1, a.Number)
				if a.Score > best {
					assert.True(t, a.Adopted)
					best, bestSet = a.Score, a.Questions
				} else {
					assert.False(t, a.Adopted)
				}
			}
			assert.Equal(t, best, res.BestScore)
			assert.Equal(t, bestSet, res.Questions)
		})
	}
}

func TestRun_NeverMoreThanThreeCycles(t *testing.T) {
	completer := &scriptedCompleter{
		generate: func(n int) (string, error) { return questionSet(n), nil },
		evaluate: func(int) (string, error) { return "1", nil },
	}
	res, err := New(completer, DefaultConfig(), nil).RunDetailed(context.Background(), testDocument)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, 3, completer.generateCalls())
	assert.Equal(t, 3, completer.evaluateCalls())
}

func TestRun_GenerationFailurePropagates(t *testing.T) {
	upstream := &llm.ErrRateLimit{}
	mock := llm.NewMockProvider(
		llm.TextResponse(questionSet(1)),
		llm.TextResponse("3"),
		llm.MockResponse{Err: upstream},
	)
	qs, err := newTestWorkflow(mock).Run(context.Background(), testDocument)
	require.Error(t, err)
	assert.Nil(t, qs)

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, PhaseGenerating, stageErr.Stage)
	assert.Equal(t, 2, stageErr.Attempt)

	var rl *llm.ErrRateLimit
	assert.True(t, errors.As(err, &rl))
	assert.Equal(t, 3, mock.CallCount(), "failed call is not retried")
}

func TestRun_EvaluationFailurePropagates(t *testing.T) {
	boom := errors.New("quota exceeded")
	mock := llm.NewMockProvider(
		llm.TextResponse(questionSet(1)),
		llm.MockResponse{Err: boom},
	)
	_, err := newTestWorkflow(mock).Run(context.Background(), testDocument)
	require.ErrorIs(t, err, boom)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, PhaseEvaluating, stageErr.Stage)
	assert.Equal(t, 1, stageErr.Attempt)
}

func TestRun_CancelledBetweenPhases(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	completer := &scriptedCompleter{
		generate: func(n int) (string, error) {
			cancel()
			return questionSet(n), nil
		},
		evaluate: func(int) (string, error) { return "9", nil },
	}
	_, err := New(completer, DefaultConfig(), nil).Run(ctx, testDocument)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, completer.evaluateCalls())
}

func TestRun_CancelledDuringFinalEvaluationKeepsResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	completer := &scriptedCompleter{
		generate: func(n int) (string, error) { return questionSet(n), nil },
		evaluate: func(int) (string, error) {
			cancel()
			return "8", nil
		},
	}
	res, err := New(completer, DefaultConfig(), nil).RunDetailed(ctx, testDocument)
	require.NoError(t, err)

	assert.Equal(t, OutcomeAccepted, res.Outcome)
	assert.Equal(t, 8, res.BestScore)
	assert.Equal(t, parsedSet(1), res.Questions)
	assert.Equal(t, 1, completer.generateCalls())
}

func TestRun_CancelledAfterLowScoreStopsBeforeRegenerating(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	completer := &scriptedCompleter{
		generate: func(n int) (string, error) { return questionSet(n), nil },
		evaluate: func(int) (string, error) {
			cancel()
			return "3", nil
		},
	}
	_, err := New(completer, DefaultConfig(), nil).Run(ctx, testDocument)
	require.ErrorIs(t, err, context.Canceled)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, PhaseGenerating, stageErr.Stage)
	assert.Equal(t, 1, completer.generateCalls())
}

func TestRun_CustomConfig(t *testing.T) {
	completer := &scriptedCompleter{
		generate: func(n int) (string, error) { return questionSet(n), nil },
		evaluate: func(n int) (string, error) { return fmt.Sprint(n + 5), nil },
	}
	cfg := Config{QuestionCount: 3, QualityThreshold: 9, MaxAttempts: 5, FallbackScore: 7, Model: "gemini-flash"}
	res, err := New(completer, cfg, nil).RunDetailed(context.Background(), testDocument)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Attempts)
	assert.Equal(t, OutcomeAccepted, res.Outcome)
	assert.Contains(t, completer.prompts[0], "exactly 3 question/answer pairs")
	for _, m := range completer.models {
		assert.Equal(t, "gemini-flash", m)
	}
}

func TestRun_PromptsCarryDocumentAndPairs(t *testing.T) {
	mock := scriptedMock("8")
	_, err := newTestWorkflow(mock).Run(context.Background(), testDocument)
	require.NoError(t, err)

	prompts := mock.Prompts()
	require.Len(t, prompts, 2)
	assert.Contains(t, prompts[0], testDocument)
	assert.Contains(t, prompts[0], "exactly 5 question/answer pairs")
	assert.Contains(t, prompts[1], "Q: Question 1.1?\nA: Answer 1.1\nQ: Question 1.2?\nA: Answer 1.2")
	assert.Contains(t, prompts[1], "ONLY a whole number")
}

func TestDecide(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		score, attempts int
		want            Decision
	}{
		{7, 1, DecisionAccept},
		{10, 3, DecisionAccept},
		{6, 1, DecisionRegenerate},
		{6, 2, DecisionRegenerate},
		{6, 3, DecisionExhausted},
		{1, 4, DecisionExhausted},
	}
	for _, tt := range tests {
		state := &WorkflowState{CurrentScore: tt.score, Attempts: tt.attempts}
		assert.Equal(t, tt.want, decide(state, cfg), "score=%d attempts=%d", tt.score, tt.attempts)
	}
}

// scriptedCompleter answers by prompt kind and counts calls per kind.
type scriptedCompleter struct {
	mu       sync.Mutex
	generate func(attempt int) (string, error)
	evaluate func(attempt int) (string, error)
	gens     int
	evals    int
	prompts  []string
	models   []string
}

func (s *scriptedCompleter) Complete(_ context.Context, model, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.models = append(s.models, model)
	var (
		fn func(int) (string, error)
		n  int
	)
	if strings.HasPrefix(prompt, evaluationInstructions) {
		s.evals++
		fn, n = s.evaluate, s.evals
	} else {
		s.gens++
		fn, n = s.generate, s.gens
	}
	s.mu.Unlock()
	return fn(n)
}

func (s *scriptedCompleter) generateCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens
}

func (s *scriptedCompleter) evaluateCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evals
}
