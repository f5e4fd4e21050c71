package store

import (
	"context"
	"fmt"

	"github.com/abhisek/notequiz/ent"
	"github.com/abhisek/notequiz/ent/noteset"
	"github.com/abhisek/notequiz/ent/question"
)

// noteRepo implements NoteRepo using the ent client.
type noteRepo struct {
	client *ent.Client
}

func (r *noteRepo) CreateNoteSet(ctx context.Context, ns NoteSet) (*NoteSet, error) {
	create := r.client.NoteSet.Create().
		SetTitle(ns.Title).
		SetSourcePath(ns.SourcePath).
		SetContent(ns.Content)
	if !ns.UploadedAt.IsZero() {
		create = create.SetUploadedAt(ns.UploadedAt)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save note set: %w", err)
	}
	return entNoteSetToNoteSet(saved), nil
}

func (r *noteRepo) GetNoteSet(ctx context.Context, id int) (*NoteSet, error) {
	ns, err := r.client.NoteSet.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("note set %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get note set %d: %w", id, err)
	}
	return entNoteSetToNoteSet(ns), nil
}

func (r *noteRepo) ListNoteSets(ctx context.Context) ([]NoteSet, error) {
	sets, err := r.client.NoteSet.Query().
		Order(ent.Desc(noteset.FieldUploadedAt), ent.Desc(noteset.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list note sets: %w", err)
	}

	out := make([]NoteSet, len(sets))
	for i, ns := range sets {
		out[i] = *entNoteSetToNoteSet(ns)
	}
	return out, nil
}

func (r *noteRepo) DeleteNoteSet(ctx context.Context, id int) error {
	err := r.client.NoteSet.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("note set %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("delete note set %d: %w", id, err)
	}
	return nil
}

func (r *noteRepo) ReplaceQuestions(ctx context.Context, noteSetID int, pairs []QAPair) ([]Question, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	saved, err := replaceQuestionsTx(ctx, tx, noteSetID, pairs)
	if err != nil {
		return nil, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit questions: %w", err)
	}
	return saved, nil
}

func replaceQuestionsTx(ctx context.Context, tx *ent.Tx, noteSetID int, pairs []QAPair) ([]Question, error) {
	exists, err := tx.NoteSet.Query().Where(noteset.ID(noteSetID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("look up note set %d: %w", noteSetID, err)
	}
	if !exists {
		return nil, fmt.Errorf("note set %d: %w", noteSetID, ErrNotFound)
	}

	if _, err := tx.Question.Delete().Where(question.NoteSetID(noteSetID)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("clear questions of note set %d: %w", noteSetID, err)
	}
	if len(pairs) == 0 {
		return []Question{}, nil
	}

	builders := make([]*ent.QuestionCreate, len(pairs))
	for i, p := range pairs {
		builders[i] = tx.Question.Create().
			SetNoteSetID(noteSetID).
			SetPosition(i).
			SetQuestionText(p.Question).
			SetAnswerText(p.Answer)
	}
	created, err := tx.Question.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save questions of note set %d: %w", noteSetID, err)
	}

	saved := make([]Question, len(created))
	for i, q := range created {
		saved[i] = entQuestionToQuestion(q)
	}
	return saved, nil
}

func (r *noteRepo) Questions(ctx context.Context, noteSetID int) ([]Question, error) {
	qs, err := r.client.Question.Query().
		Where(question.NoteSetID(noteSetID)).
		Order(ent.Asc(question.FieldPosition), ent.Asc(question.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions of note set %d: %w", noteSetID, err)
	}

	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = entQuestionToQuestion(q)
	}
	return out, nil
}

func (r *noteRepo) MarkReviewed(ctx context.Context, questionID int, reviewed bool) error {
	err := r.client.Question.UpdateOneID(questionID).
		SetReviewed(reviewed).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("question %d: %w", questionID, ErrNotFound)
		}
		return fmt.Errorf("mark question %d reviewed: %w", questionID, err)
	}
	return nil
}

// rollback aborts tx and keeps err as the primary error.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}

func entNoteSetToNoteSet(ns *ent.NoteSet) *NoteSet {
	return &NoteSet{
		ID:         ns.ID,
		Title:      ns.Title,
		SourcePath: ns.SourcePath,
		Content:    ns.Content,
		UploadedAt: ns.UploadedAt,
	}
}

func entQuestionToQuestion(q *ent.Question) Question {
	return Question{
		ID:           q.ID,
		NoteSetID:    q.NoteSetID,
		Position:     q.Position,
		QuestionText: q.QuestionText,
		AnswerText:   q.AnswerText,
		Reviewed:     q.Reviewed,
		CreatedAt:    q.CreatedAt,
	}
}
