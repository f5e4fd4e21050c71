// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/notequiz/ent/noteset"
	"github.com/abhisek/notequiz/ent/question"
)

// NoteSetCreate is the builder for creating a NoteSet entity.
type NoteSetCreate struct {
	config
	mutation *NoteSetMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *NoteSetCreate) SetTitle(v string) *NoteSetCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *NoteSetCreate) SetSourcePath(v string) *NoteSetCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_c *NoteSetCreate) SetNillableSourcePath(v *string) *NoteSetCreate {
	if v != nil {
		_c.SetSourcePath(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *NoteSetCreate) SetContent(v string) *NoteSetCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *NoteSetCreate) SetNillableContent(v *string) *NoteSetCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *NoteSetCreate) SetUploadedAt(v time.Time) *NoteSetCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *NoteSetCreate) SetNillableUploadedAt(v *time.Time) *NoteSetCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *NoteSetCreate) AddQuestionIDs(ids ...int) *NoteSetCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *NoteSetCreate) AddQuestions(v ...*Question) *NoteSetCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// Mutation returns the NoteSetMutation object of the builder.
func (_c *NoteSetCreate) Mutation() *NoteSetMutation {
	return _c.mutation
}

// Save creates the NoteSet in the database.
func (_c *NoteSetCreate) Save(ctx context.Context) (*NoteSet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NoteSetCreate) SaveX(ctx context.Context) *NoteSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NoteSetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NoteSetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NoteSetCreate) defaults() {
	if _, ok := _c.mutation.SourcePath(); !ok {
		v := noteset.DefaultSourcePath
		_c.mutation.SetSourcePath(v)
	}
	if _, ok := _c.mutation.Content(); !ok {
		v := noteset.DefaultContent
		_c.mutation.SetContent(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := noteset.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NoteSetCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "NoteSet.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := noteset.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "NoteSet.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "NoteSet.source_path"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "NoteSet.content"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "NoteSet.uploaded_at"`)}
	}
	return nil
}

func (_c *NoteSetCreate) sqlSave(ctx context.Context) (*NoteSet, error) {
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

func (_c *NoteSetCreate) createSpec() (*NoteSet, *sqlgraph.CreateSpec) {
	var (
		_node = &NoteSet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(noteset.Table, sqlgraph.NewFieldSpec(noteset.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(noteset.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(noteset.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(noteset.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(noteset.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   noteset.QuestionsTable,
			Columns: []string{noteset.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NoteSetCreateBulk is the builder for creating many NoteSet entities in bulk.
type NoteSetCreateBulk struct {
	config
	err      error
	builders []*NoteSetCreate
}

// Save creates the NoteSet entities in the database.
func (_c *NoteSetCreateBulk) Save(ctx context.Context) ([]*NoteSet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NoteSet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NoteSetMutation)
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
func (_c *NoteSetCreateBulk) SaveX(ctx context.Context) []*NoteSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NoteSetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NoteSetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
