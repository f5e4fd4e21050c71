package quizgen

import (
	"context"
	"log/slog"
	"time"
)

// Workflow runs the generate-evaluate-retry loop. It holds no per-run
// state, so one Workflow may serve concurrent runs.
type Workflow struct {
	generator *Generator
	evaluator *Evaluator
	config    Config
	logger    *slog.Logger
}

// New creates a Workflow driving completer. Zero Config fields take their
// defaults. A nil logger uses slog.Default().
func New(completer Completer, cfg Config, logger *slog.Logger) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	return &Workflow{
		generator: NewGenerator(completer, cfg, logger),
		evaluator: NewEvaluator(completer, cfg, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Config returns the effective configuration.
func (w *Workflow) Config() Config {
	return w.config
}

// Run returns the best question set for documentText. The set is empty
// when no attempt was adopted.
func (w *Workflow) Run(ctx context.Context, documentText string) ([]QAPair, error) {
	res, err := w.RunDetailed(ctx, documentText)
	if err != nil {
		return nil, err
	}
	return res.Questions, nil
}

// RunDetailed is Run with the full per-attempt history. A completion
// failure, or a ctx cancelled before a generation or evaluation call,
// aborts the run with a *StageError and no result.
func (w *Workflow) RunDetailed(ctx context.Context, documentText string) (*Result, error) {
	state := NewState(documentText)
	res := &Result{StartedAt: time.Now()}

	for state.Phase != PhaseTerminated {
		// Deciding makes no external call, so a finished evaluation is
		// never discarded by a late cancellation.
		if state.Phase != PhaseDeciding {
			if err := ctx.Err(); err != nil {
				return nil, &StageError{Stage: state.Phase, Attempt: state.Attempts, Err: err}
			}
		}

		switch state.Phase {
		case PhaseGenerating:
			attempt := state.Attempts + 1
			questions, err := w.generator.Generate(ctx, state.DocumentText, attempt)
			if err != nil {
				return nil, &StageError{Stage: PhaseGenerating, Attempt: attempt, Err: err}
			}
			state.CurrentQuestions = questions
			state.Attempts = attempt
			state.Phase = PhaseEvaluating

		case PhaseEvaluating:
			ev, err := w.evaluator.Evaluate(ctx, state.CurrentQuestions, state.BestScore)
			if err != nil {
				return nil, &StageError{Stage: PhaseEvaluating, Attempt: state.Attempts, Err: err}
			}
			state.apply(ev)
			res.History = append(res.History, Attempt{
				Number:    state.Attempts,
				Questions: state.CurrentQuestions,
				Score:     ev.Score,
				Adopted:   ev.UpdatedBest,
			})
			state.Phase = PhaseDeciding

		case PhaseDeciding:
			switch d := decide(state, w.config); d {
			case DecisionAccept:
				w.logger.Info("quality acceptable, finishing", "score", state.CurrentScore, "attempts", state.Attempts)
				res.Outcome = OutcomeAccepted
				state.Phase = PhaseTerminated
			case DecisionExhausted:
				w.logger.Warn("attempts exhausted, using best available",
					"score", state.CurrentScore, "best", state.BestScore, "attempts", state.Attempts)
				res.Outcome = OutcomeExhausted
				state.Phase = PhaseTerminated
			default:
				w.logger.Info("quality too low, regenerating", "score", state.CurrentScore, "attempts", state.Attempts)
				state.Phase = PhaseGenerating
			}
		}
	}

	res.Questions = state.BestQuestions
	if res.Questions == nil {
		res.Questions = []QAPair{}
	}
	res.BestScore = state.BestScore
	res.Attempts = state.Attempts
	res.Duration = time.Since(res.StartedAt)
	return res, nil
}

// decide applies the termination policy. Acceptance is checked before the
// budget, so a passing final attempt reports as accepted.
func decide(state *WorkflowState, cfg Config) Decision {
	if state.CurrentScore >= cfg.QualityThreshold {
		return DecisionAccept
	}
	if state.Attempts >= cfg.MaxAttempts {
		return DecisionExhausted
	}
	return DecisionRegenerate
}
