// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// NoteSet is the predicate function for noteset builders.
type NoteSet func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// WorkflowRun is the predicate function for workflowrun builders.
type WorkflowRun func(*sql.Selector)
