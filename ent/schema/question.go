package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is one accepted question/answer pair of a note set.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.Int("note_set_id"),
		field.Int("position").
			Default(0).
			Comment("Order within the question set, from 0"),
		field.Text("question_text"),
		field.Text("answer_text"),
		field.Bool("reviewed").
			Default(false),
		field.Time("created_at").
			Default(func() time.Time { return time.Now().UTC() }).
			Immutable(),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("note_set", NoteSet.Type).
			Ref("questions").
			Field("note_set_id").
			Unique().
			Required(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("note_set_id", "position"),
	}
}
