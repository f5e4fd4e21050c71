// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/notequiz/ent/workflowrun"
)

// WorkflowRunCreate is the builder for creating a WorkflowRun entity.
type WorkflowRunCreate struct {
	config
	mutation *WorkflowRunMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *WorkflowRunCreate) SetRunID(v string) *WorkflowRunCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNoteSetID sets the "note_set_id" field.
func (_c *WorkflowRunCreate) SetNoteSetID(v int) *WorkflowRunCreate {
	_c.mutation.SetNoteSetID(v)
	return _c
}

// SetNillableNoteSetID sets the "note_set_id" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableNoteSetID(v *int) *WorkflowRunCreate {
	if v != nil {
		_c.SetNoteSetID(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *WorkflowRunCreate) SetAttempts(v int) *WorkflowRunCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetBestScore sets the "best_score" field.
func (_c *WorkflowRunCreate) SetBestScore(v int) *WorkflowRunCreate {
	_c.mutation.SetBestScore(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *WorkflowRunCreate) SetOutcome(v string) *WorkflowRunCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetScores sets the "scores" field.
func (_c *WorkflowRunCreate) SetScores(v []int) *WorkflowRunCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *WorkflowRunCreate) SetQuestionCount(v int) *WorkflowRunCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableQuestionCount(v *int) *WorkflowRunCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *WorkflowRunCreate) SetStartedAt(v time.Time) *WorkflowRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *WorkflowRunCreate) SetDurationMs(v int64) *WorkflowRunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableDurationMs(v *int64) *WorkflowRunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_c *WorkflowRunCreate) Mutation() *WorkflowRunMutation {
	return _c.mutation
}

// Save creates the WorkflowRun in the database.
func (_c *WorkflowRunCreate) Save(ctx context.Context) (*WorkflowRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowRunCreate) SaveX(ctx context.Context) *WorkflowRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowRunCreate) defaults() {
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := workflowrun.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := workflowrun.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowRunCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "WorkflowRun.run_id"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "WorkflowRun.attempts"`)}
	}
	if _, ok := _c.mutation.BestScore(); !ok {
		return &ValidationError{Name: "best_score", err: errors.New(`ent: missing required field "WorkflowRun.best_score"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "WorkflowRun.outcome"`)}
	}
	if _, ok := _c.mutation.Scores(); !ok {
		return &ValidationError{Name: "scores", err: errors.New(`ent: missing required field "WorkflowRun.scores"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "WorkflowRun.question_count"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "WorkflowRun.started_at"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "WorkflowRun.duration_ms"`)}
	}
	return nil
}

func (_c *WorkflowRunCreate) sqlSave(ctx context.Context) (*WorkflowRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowRunCreate) createSpec() (*WorkflowRun, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowrun.Table, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(workflowrun.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.NoteSetID(); ok {
		_spec.SetField(workflowrun.FieldNoteSetID, field.TypeInt, value)
		_node.NoteSetID = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(workflowrun.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.BestScore(); ok {
		_spec.SetField(workflowrun.FieldBestScore, field.TypeInt, value)
		_node.BestScore = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(workflowrun.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(workflowrun.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(workflowrun.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(workflowrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(workflowrun.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// WorkflowRunCreateBulk is the builder for creating many WorkflowRun entities in bulk.
type WorkflowRunCreateBulk struct {
	config
	err      error
	builders []*WorkflowRunCreate
}

// Save creates the WorkflowRun entities in the database.
func (_c *WorkflowRunCreateBulk) Save(ctx context.Context) ([]*WorkflowRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkflowRunCreateBulk) SaveX(ctx context.Context) []*WorkflowRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
