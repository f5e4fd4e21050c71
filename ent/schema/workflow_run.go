package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowRun summarizes one finished generate/evaluate run. Runs outlive
// their note set, so note_set_id is a plain column rather than an edge.
type WorkflowRun struct {
	ent.Schema
}

func (WorkflowRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Immutable(),
		field.Int("note_set_id").
			Optional().
			Comment("Unset when the run quizzed a file directly"),
		field.Int("attempts"),
		field.Int("best_score"),
		field.String("outcome").
			Comment("accepted or exhausted"),
		field.JSON("scores", []int{}).
			Comment("Score of every attempt in order"),
		field.Int("question_count").
			Default(0),
		field.Time("started_at"),
		field.Int64("duration_ms").
			Default(0),
	}
}

func (WorkflowRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("note_set_id"),
	}
}
