package quizgen

import (
	"context"
	"log/slog"

	"github.com/abhisek/notequiz/internal/llm"
)

// Evaluator scores a question set with one completion.
type Evaluator struct {
	completer Completer
	config    Config
	logger    *slog.Logger
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(completer Completer, cfg Config, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{completer: completer, config: cfg.withDefaults(), logger: logger}
}

// Evaluate scores questions. UpdatedBest is set only when the score is
// strictly greater than priorBest; a tie keeps the incumbent.
func (e *Evaluator) Evaluate(ctx context.Context, questions []QAPair, priorBest int) (Evaluation, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionEval)

	reply, err := e.completer.Complete(ctx, e.config.Model, buildEvaluationPrompt(questions))
	if err != nil {
		return Evaluation{}, err
	}

	score, ok := parseScore(reply, e.config.FallbackScore)
	if !ok {
		e.logger.Debug("unparseable score, using fallback", "reply", truncate(reply, 80), "fallback", score)
	}

	ev := Evaluation{Score: score, UpdatedBest: score > priorBest}
	if ev.UpdatedBest {
		e.logger.Info("new best question set", "score", score, "previous_best", priorBest)
	} else {
		e.logger.Info("keeping previous best", "score", score, "best", priorBest)
	}
	return ev, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
