package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore opens a private in-memory database. The name keeps
// databases of different tests apart while every pooled connection of one
// test shares the same data.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"note_sets", "questions", "workflow_runs", "llm_request_events", "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "a.db?_pragma=foreign_keys(1)", withForeignKeys("a.db"))
	assert.Equal(t, "file:x?mode=memory&_pragma=foreign_keys(1)", withForeignKeys("file:x?mode=memory"))
	assert.Equal(t, "a.db?_pragma=foreign_keys(0)", withForeignKeys("a.db?_pragma=foreign_keys(0)"))
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestNoteSetCRUD(t *testing.T) {
	s := openTestStore(t)
	repo := s.NoteRepo()
	ctx := context.Background()

	first, err := repo.CreateNoteSet(ctx, NoteSet{
		Title:      "Photosynthesis",
		SourcePath: "bio.md",
		Content:    "Plants convert light into chemical energy.",
		UploadedAt: time.Now().UTC().Add(-time.Hour),
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := repo.CreateNoteSet(ctx, NoteSet{Title: "Cells", Content: "Cells are the unit of life."})
	require.NoError(t, err)
	assert.False(t, second.UploadedAt.IsZero())

	got, err := repo.GetNoteSet(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Photosynthesis", got.Title)
	assert.Equal(t, "bio.md", got.SourcePath)
	assert.Equal(t, "Plants convert light into chemical energy.", got.Content)

	list, err := repo.ListNoteSets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")

	require.NoError(t, repo.DeleteNoteSet(ctx, first.ID))
	_, err = repo.GetNoteSet(ctx, first.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = repo.DeleteNoteSet(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplaceQuestions(t *testing.T) {
	s := openTestStore(t)
	repo := s.NoteRepo()
	ctx := context.Background()

	ns, err := repo.CreateNoteSet(ctx, NoteSet{Title: "T", Content: "C"})
	require.NoError(t, err)

	saved, err := repo.ReplaceQuestions(ctx, ns.ID, []QAPair{
		{Question: "What is 2+2?", Answer: "4"},
		{Question: "Capital of France?", Answer: "Paris"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, 0, saved[0].Position)
	assert.Equal(t, 1, saved[1].Position)

	qs, err := repo.Questions(ctx, ns.ID)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "What is 2+2?", qs[0].QuestionText)
	assert.Equal(t, "Paris", qs[1].AnswerText)
	assert.False(t, qs[0].Reviewed)

	// A second run discards the previous set.
	_, err = repo.ReplaceQuestions(ctx, ns.ID, []QAPair{{Question: "Only one?", Answer: "Yes"}})
	require.NoError(t, err)

	qs, err = repo.Questions(ctx, ns.ID)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "Only one?", qs[0].QuestionText)

	// An empty set clears all questions.
	saved, err = repo.ReplaceQuestions(ctx, ns.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, saved)
	qs, err = repo.Questions(ctx, ns.ID)
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestReplaceQuestionsUnknownNoteSetRollsBack(t *testing.T) {
	s := openTestStore(t)
	repo := s.NoteRepo()
	ctx := context.Background()

	_, err := repo.ReplaceQuestions(ctx, 999, []QAPair{{Question: "Q", Answer: "A"}})
	require.ErrorIs(t, err, ErrNotFound)

	qs, err := repo.Questions(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestQuestionsRejectMissingNoteSet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Client().Question.Create().
		SetNoteSetID(42).
		SetQuestionText("Q").
		SetAnswerText("A").
		Save(ctx)
	assert.Error(t, err, "note_set_id is a foreign key")
}

func TestDeleteNoteSetCascadesQuestions(t *testing.T) {
	s := openTestStore(t)
	repo := s.NoteRepo()
	ctx := context.Background()

	ns, err := repo.CreateNoteSet(ctx, NoteSet{Title: "T", Content: "C"})
	require.NoError(t, err)
	_, err = repo.ReplaceQuestions(ctx, ns.ID, []QAPair{{Question: "Q", Answer: "A"}})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteNoteSet(ctx, ns.ID))

	var count int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM questions").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestMarkReviewed(t *testing.T) {
	s := openTestStore(t)
	repo := s.NoteRepo()
	ctx := context.Background()

	ns, err := repo.CreateNoteSet(ctx, NoteSet{Title: "T", Content: "C"})
	require.NoError(t, err)
	saved, err := repo.ReplaceQuestions(ctx, ns.ID, []QAPair{{Question: "Q", Answer: "A"}})
	require.NoError(t, err)

	require.NoError(t, repo.MarkReviewed(ctx, saved[0].ID, true))
	qs, err := repo.Questions(ctx, ns.ID)
	require.NoError(t, err)
	assert.True(t, qs[0].Reviewed)

	require.NoError(t, repo.MarkReviewed(ctx, saved[0].ID, false))
	qs, err = repo.Questions(ctx, ns.ID)
	require.NoError(t, err)
	assert.False(t, qs[0].Reviewed)

	assert.ErrorIs(t, repo.MarkReviewed(ctx, 12345, true), ErrNotFound)
}

func TestRecordAndListRuns(t *testing.T) {
	s := openTestStore(t)
	runs := s.RunRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, runs.RecordRun(ctx, WorkflowRun{
		NoteSetID:     1,
		Attempts:      3,
		BestScore:     6,
		Outcome:       "exhausted",
		Scores:        []int{4, 6, 5},
		QuestionCount: 5,
		StartedAt:     base,
		DurationMs:    1200,
	}))
	require.NoError(t, runs.RecordRun(ctx, WorkflowRun{
		RunID:         "fixed-id",
		NoteSetID:     1,
		Attempts:      1,
		BestScore:     8,
		Outcome:       "accepted",
		Scores:        []int{8},
		QuestionCount: 5,
		StartedAt:     base.Add(time.Minute),
	}))
	// A run without a note set is stored but never listed for one.
	require.NoError(t, runs.RecordRun(ctx, WorkflowRun{Attempts: 1, Outcome: "accepted"}))

	got, err := runs.RunsForNoteSet(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "fixed-id", got[0].RunID)
	assert.Equal(t, []int{8}, got[0].Scores)
	assert.Equal(t, "accepted", got[0].Outcome)

	assert.NotEmpty(t, got[1].RunID)
	assert.Equal(t, []int{4, 6, 5}, got[1].Scores)
	assert.Equal(t, 3, got[1].Attempts)
	assert.Equal(t, int64(1200), got[1].DurationMs)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	records := []LLMRequestEventData{
		{Provider: "mock", Model: "m1", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 10, Success: true},
		{Provider: "mock", Model: "m1", Purpose: "question-eval", InputTokens: 40, OutputTokens: 2, LatencyMs: 30, Success: true},
		{Provider: "mock", Model: "m2", Purpose: "question-gen", InputTokens: 0, OutputTokens: 0, LatencyMs: 20, Success: false, ErrorMessage: "boom"},
	}
	for _, r := range records {
		require.NoError(t, events.AppendLLMRequest(ctx, r))
	}

	all, err := events.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].Sequence, "newest first")
	assert.Equal(t, "boom", all[0].ErrorMessage)

	gens, err := events.QueryLLMEvents(ctx, QueryOpts{Purpose: "question-gen", Limit: 1})
	require.NoError(t, err)
	require.Len(t, gens, 1)
	assert.Equal(t, "m2", gens[0].Model)

	one, err := events.GetLLMEvent(ctx, all[2].ID)
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, 100, one.InputTokens)

	missing, err := events.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byPurpose, err := events.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, "question-eval", byPurpose[0].Purpose)
	assert.Equal(t, 1, byPurpose[0].Calls)
	assert.Equal(t, "question-gen", byPurpose[1].Purpose)
	assert.Equal(t, 2, byPurpose[1].Calls)
	assert.Equal(t, 100, byPurpose[1].InputTokens)
	assert.Equal(t, int64(15), byPurpose[1].AvgLatencyMs)

	byModel, err := events.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "m1", byModel[0].Model)
	assert.Equal(t, 140, byModel[0].InputTokens)
}
