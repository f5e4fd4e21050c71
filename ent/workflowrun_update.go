// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/notequiz/ent/predicate"
	"github.com/abhisek/notequiz/ent/workflowrun"
)

// WorkflowRunUpdate is the builder for updating WorkflowRun entities.
type WorkflowRunUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowRunMutation
}

// Where appends a list predicates to the WorkflowRunUpdate builder.
func (_u *WorkflowRunUpdate) Where(ps ...predicate.WorkflowRun) *WorkflowRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNoteSetID sets the "note_set_id" field.
func (_u *WorkflowRunUpdate) SetNoteSetID(v int) *WorkflowRunUpdate {
	_u.mutation.ResetNoteSetID()
	_u.mutation.SetNoteSetID(v)
	return _u
}

// SetNillableNoteSetID sets the "note_set_id" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableNoteSetID(v *int) *WorkflowRunUpdate {
	if v != nil {
		_u.SetNoteSetID(*v)
	}
	return _u
}

// AddNoteSetID adds value to the "note_set_id" field.
func (_u *WorkflowRunUpdate) AddNoteSetID(v int) *WorkflowRunUpdate {
	_u.mutation.AddNoteSetID(v)
	return _u
}

// ClearNoteSetID clears the value of the "note_set_id" field.
func (_u *WorkflowRunUpdate) ClearNoteSetID() *WorkflowRunUpdate {
	_u.mutation.ClearNoteSetID()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *WorkflowRunUpdate) SetAttempts(v int) *WorkflowRunUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableAttempts(v *int) *WorkflowRunUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *WorkflowRunUpdate) AddAttempts(v int) *WorkflowRunUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *WorkflowRunUpdate) SetBestScore(v int) *WorkflowRunUpdate {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableBestScore(v *int) *WorkflowRunUpdate {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *WorkflowRunUpdate) AddBestScore(v int) *WorkflowRunUpdate {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *WorkflowRunUpdate) SetOutcome(v string) *WorkflowRunUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableOutcome(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *WorkflowRunUpdate) SetScores(v []int) *WorkflowRunUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// AppendScores appends value to the "scores" field.
func (_u *WorkflowRunUpdate) AppendScores(v []int) *WorkflowRunUpdate {
	_u.mutation.AppendScores(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *WorkflowRunUpdate) SetQuestionCount(v int) *WorkflowRunUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableQuestionCount(v *int) *WorkflowRunUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *WorkflowRunUpdate) AddQuestionCount(v int) *WorkflowRunUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowRunUpdate) SetStartedAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableStartedAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *WorkflowRunUpdate) SetDurationMs(v int64) *WorkflowRunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableDurationMs(v *int64) *WorkflowRunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *WorkflowRunUpdate) AddDurationMs(v int64) *WorkflowRunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_u *WorkflowRunUpdate) Mutation() *WorkflowRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WorkflowRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(workflowrun.Table, workflowrun.Columns, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NoteSetID(); ok {
		_spec.SetField(workflowrun.FieldNoteSetID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNoteSetID(); ok {
		_spec.AddField(workflowrun.FieldNoteSetID, field.TypeInt, value)
	}
	if _u.mutation.NoteSetIDCleared() {
		_spec.ClearField(workflowrun.FieldNoteSetID, field.TypeInt)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(workflowrun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(workflowrun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(workflowrun.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(workflowrun.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(workflowrun.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(workflowrun.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowrun.FieldScores, value)
		})
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(workflowrun.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(workflowrun.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(workflowrun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(workflowrun.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowRunUpdateOne is the builder for updating a single WorkflowRun entity.
type WorkflowRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowRunMutation
}

// SetNoteSetID sets the "note_set_id" field.
func (_u *WorkflowRunUpdateOne) SetNoteSetID(v int) *WorkflowRunUpdateOne {
	_u.mutation.ResetNoteSetID()
	_u.mutation.SetNoteSetID(v)
	return _u
}

// SetNillableNoteSetID sets the "note_set_id" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableNoteSetID(v *int) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetNoteSetID(*v)
	}
	return _u
}

// AddNoteSetID adds value to the "note_set_id" field.
func (_u *WorkflowRunUpdateOne) AddNoteSetID(v int) *WorkflowRunUpdateOne {
	_u.mutation.AddNoteSetID(v)
	return _u
}

// ClearNoteSetID clears the value of the "note_set_id" field.
func (_u *WorkflowRunUpdateOne) ClearNoteSetID() *WorkflowRunUpdateOne {
	_u.mutation.ClearNoteSetID()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *WorkflowRunUpdateOne) SetAttempts(v int) *WorkflowRunUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableAttempts(v *int) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *WorkflowRunUpdateOne) AddAttempts(v int) *WorkflowRunUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *WorkflowRunUpdateOne) SetBestScore(v int) *WorkflowRunUpdateOne {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableBestScore(v *int) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *WorkflowRunUpdateOne) AddBestScore(v int) *WorkflowRunUpdateOne {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *WorkflowRunUpdateOne) SetOutcome(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableOutcome(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *WorkflowRunUpdateOne) SetScores(v []int) *WorkflowRunUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// AppendScores appends value to the "scores" field.
func (_u *WorkflowRunUpdateOne) AppendScores(v []int) *WorkflowRunUpdateOne {
	_u.mutation.AppendScores(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *WorkflowRunUpdateOne) SetQuestionCount(v int) *WorkflowRunUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableQuestionCount(v *int) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *WorkflowRunUpdateOne) AddQuestionCount(v int) *WorkflowRunUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowRunUpdateOne) SetStartedAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *WorkflowRunUpdateOne) SetDurationMs(v int64) *WorkflowRunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableDurationMs(v *int64) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *WorkflowRunUpdateOne) AddDurationMs(v int64) *WorkflowRunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_u *WorkflowRunUpdateOne) Mutation() *WorkflowRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowRunUpdate builder.
func (_u *WorkflowRunUpdateOne) Where(ps ...predicate.WorkflowRun) *WorkflowRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowRunUpdateOne) Select(field string, fields ...string) *WorkflowRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowRun entity.
func (_u *WorkflowRunUpdateOne) Save(ctx context.Context) (*WorkflowRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowRunUpdateOne) SaveX(ctx context.Context) *WorkflowRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WorkflowRunUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowRun, err error) {
	_spec := sqlgraph.NewUpdateSpec(workflowrun.Table, workflowrun.Columns, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowrun.FieldID)
		for _, f := range fields {
			if !workflowrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NoteSetID(); ok {
		_spec.SetField(workflowrun.FieldNoteSetID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNoteSetID(); ok {
		_spec.AddField(workflowrun.FieldNoteSetID, field.TypeInt, value)
	}
	if _u.mutation.NoteSetIDCleared() {
		_spec.ClearField(workflowrun.FieldNoteSetID, field.TypeInt)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(workflowrun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(workflowrun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(workflowrun.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(workflowrun.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(workflowrun.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(workflowrun.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowrun.FieldScores, value)
		})
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(workflowrun.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(workflowrun.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(workflowrun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(workflowrun.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &WorkflowRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
