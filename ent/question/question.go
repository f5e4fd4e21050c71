// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNoteSetID holds the string denoting the note_set_id field in the database.
	FieldNoteSetID = "note_set_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldAnswerText holds the string denoting the answer_text field in the database.
	FieldAnswerText = "answer_text"
	// FieldReviewed holds the string denoting the reviewed field in the database.
	FieldReviewed = "reviewed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeNoteSet holds the string denoting the note_set edge name in mutations.
	EdgeNoteSet = "note_set"
	// Table holds the table name of the question in the database.
	Table = "questions"
	// NoteSetTable is the table that holds the note_set relation/edge.
	NoteSetTable = "questions"
	// NoteSetInverseTable is the table name for the NoteSet entity.
	// It exists in this package in order to avoid circular dependency with the "noteset" package.
	NoteSetInverseTable = "note_sets"
	// NoteSetColumn is the table column denoting the note_set relation/edge.
	NoteSetColumn = "note_set_id"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldNoteSetID,
	FieldPosition,
	FieldQuestionText,
	FieldAnswerText,
	FieldReviewed,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// DefaultReviewed holds the default value on creation for the "reviewed" field.
	DefaultReviewed bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNoteSetID orders the results by the note_set_id field.
func ByNoteSetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNoteSetID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByAnswerText orders the results by the answer_text field.
func ByAnswerText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerText, opts...).ToFunc()
}

// ByReviewed orders the results by the reviewed field.
func ByReviewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByNoteSetField orders the results by note_set field.
func ByNoteSetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNoteSetStep(), sql.OrderByField(field, opts...))
	}
}
func newNoteSetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NoteSetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, NoteSetTable, NoteSetColumn),
	)
}
