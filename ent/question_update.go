// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/notequiz/ent/noteset"
	"github.com/abhisek/notequiz/ent/predicate"
	"github.com/abhisek/notequiz/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNoteSetID sets the "note_set_id" field.
func (_u *QuestionUpdate) SetNoteSetID(v int) *QuestionUpdate {
	_u.mutation.SetNoteSetID(v)
	return _u
}

// SetNillableNoteSetID sets the "note_set_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableNoteSetID(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetNoteSetID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *QuestionUpdate) SetPosition(v int) *QuestionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePosition(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *QuestionUpdate) AddPosition(v int) *QuestionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuestionUpdate) SetQuestionText(v string) *QuestionUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestionText(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *QuestionUpdate) SetAnswerText(v string) *QuestionUpdate {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAnswerText(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// SetReviewed sets the "reviewed" field.
func (_u *QuestionUpdate) SetReviewed(v bool) *QuestionUpdate {
	_u.mutation.SetReviewed(v)
	return _u
}

// SetNillableReviewed sets the "reviewed" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableReviewed(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetReviewed(*v)
	}
	return _u
}

// SetNoteSet sets the "note_set" edge to the NoteSet entity.
func (_u *QuestionUpdate) SetNoteSet(v *NoteSet) *QuestionUpdate {
	return _u.SetNoteSetID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearNoteSet clears the "note_set" edge to the NoteSet entity.
func (_u *QuestionUpdate) ClearNoteSet() *QuestionUpdate {
	_u.mutation.ClearNoteSet()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if _u.mutation.NoteSetCleared() && len(_u.mutation.NoteSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.note_set"`)
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(question.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(question.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(question.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(question.FieldAnswerText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reviewed(); ok {
		_spec.SetField(question.FieldReviewed, field.TypeBool, value)
	}
	if _u.mutation.NoteSetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.NoteSetTable,
			Columns: []string{question.NoteSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(noteset.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NoteSetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.NoteSetTable,
			Columns: []string{question.NoteSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(noteset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetNoteSetID sets the "note_set_id" field.
func (_u *QuestionUpdateOne) SetNoteSetID(v int) *QuestionUpdateOne {
	_u.mutation.SetNoteSetID(v)
	return _u
}

// SetNillableNoteSetID sets the "note_set_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableNoteSetID(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetNoteSetID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *QuestionUpdateOne) SetPosition(v int) *QuestionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePosition(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *QuestionUpdateOne) AddPosition(v int) *QuestionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuestionUpdateOne) SetQuestionText(v string) *QuestionUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestionText(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *QuestionUpdateOne) SetAnswerText(v string) *QuestionUpdateOne {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAnswerText(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// SetReviewed sets the "reviewed" field.
func (_u *QuestionUpdateOne) SetReviewed(v bool) *QuestionUpdateOne {
	_u.mutation.SetReviewed(v)
	return _u
}

// SetNillableReviewed sets the "reviewed" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableReviewed(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetReviewed(*v)
	}
	return _u
}

// SetNoteSet sets the "note_set" edge to the NoteSet entity.
func (_u *QuestionUpdateOne) SetNoteSet(v *NoteSet) *QuestionUpdateOne {
	return _u.SetNoteSetID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearNoteSet clears the "note_set" edge to the NoteSet entity.
func (_u *QuestionUpdateOne) ClearNoteSet() *QuestionUpdateOne {
	_u.mutation.ClearNoteSet()
	return _u
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if _u.mutation.NoteSetCleared() && len(_u.mutation.NoteSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.note_set"`)
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(question.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(question.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(question.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(question.FieldAnswerText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reviewed(); ok {
		_spec.SetField(question.FieldReviewed, field.TypeBool, value)
	}
	if _u.mutation.NoteSetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.NoteSetTable,
			Columns: []string{question.NoteSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(noteset.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NoteSetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.NoteSetTable,
			Columns: []string{question.NoteSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(noteset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
