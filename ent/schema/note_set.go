package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NoteSet is an uploaded document and the text extracted from it.
type NoteSet struct {
	ent.Schema
}

func (NoteSet) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			MaxLen(200),
		field.String("source_path").
			Default(""),
		field.Text("content").
			Default("").
			Comment("Extracted note text; empty for imported quizzes"),
		field.Time("uploaded_at").
			Default(func() time.Time { return time.Now().UTC() }),
	}
}

func (NoteSet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("questions", Question.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (NoteSet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uploaded_at"),
	}
}
