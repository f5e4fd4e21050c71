package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/notequiz/ent"
	"github.com/abhisek/notequiz/ent/workflowrun"
	"github.com/google/uuid"
)

// runRepo implements RunRepo using the ent client.
type runRepo struct {
	client *ent.Client
}

func (r *runRepo) RecordRun(ctx context.Context, run WorkflowRun) error {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	if run.Scores == nil {
		run.Scores = []int{}
	}

	create := r.client.WorkflowRun.Create().
		SetRunID(run.RunID).
		SetAttempts(run.Attempts).
		SetBestScore(run.BestScore).
		SetOutcome(run.Outcome).
		SetScores(run.Scores).
		SetQuestionCount(run.QuestionCount).
		SetStartedAt(run.StartedAt).
		SetDurationMs(run.DurationMs)
	if run.NoteSetID > 0 {
		create = create.SetNoteSetID(run.NoteSetID)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save workflow run %s: %w", run.RunID, err)
	}
	return nil
}

func (r *runRepo) RunsForNoteSet(ctx context.Context, noteSetID int) ([]WorkflowRun, error) {
	runs, err := r.client.WorkflowRun.Query().
		Where(workflowrun.NoteSetID(noteSetID)).
		Order(ent.Desc(workflowrun.FieldStartedAt), ent.Desc(workflowrun.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list runs of note set %d: %w", noteSetID, err)
	}

	out := make([]WorkflowRun, len(runs))
	for i, run := range runs {
		out[i] = WorkflowRun{
			ID:            run.ID,
			RunID:         run.RunID,
			NoteSetID:     run.NoteSetID,
			Attempts:      run.Attempts,
			BestScore:     run.BestScore,
			Outcome:       run.Outcome,
			Scores:        run.Scores,
			QuestionCount: run.QuestionCount,
			StartedAt:     run.StartedAt,
			DurationMs:    run.DurationMs,
		}
	}
	return out, nil
}
