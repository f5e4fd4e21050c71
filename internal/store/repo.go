package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // exact purpose match ("" = any)
}

// NoteSet is an uploaded document and its extracted text.
type NoteSet struct {
	ID         int
	Title      string
	SourcePath string
	Content    string
	UploadedAt time.Time
}

// Question is one persisted question/answer pair belonging to a note set.
type Question struct {
	ID           int
	NoteSetID    int
	Position     int
	QuestionText string
	AnswerText   string
	Reviewed     bool
	CreatedAt    time.Time
}

// QAPair is the minimal question/answer shape accepted by ReplaceQuestions.
type QAPair struct {
	Question string
	Answer   string
}

// NoteRepo manages note sets and their accepted question sets.
type NoteRepo interface {
	// CreateNoteSet stores a new note set and returns it with its ID set.
	CreateNoteSet(ctx context.Context, ns NoteSet) (*NoteSet, error)

	// GetNoteSet returns the note set with id, or ErrNotFound.
	GetNoteSet(ctx context.Context, id int) (*NoteSet, error)

	// ListNoteSets returns all note sets, newest first.
	ListNoteSets(ctx context.Context) ([]NoteSet, error)

	// DeleteNoteSet removes a note set and, by cascade, its questions.
	DeleteNoteSet(ctx context.Context, id int) error

	// ReplaceQuestions atomically discards the note set's previous questions
	// and stores pairs in order.
	ReplaceQuestions(ctx context.Context, noteSetID int, pairs []QAPair) ([]Question, error)

	// Questions returns a note set's questions in stored order.
	Questions(ctx context.Context, noteSetID int) ([]Question, error)

	// MarkReviewed sets the reviewed flag on a question.
	MarkReviewed(ctx context.Context, questionID int, reviewed bool) error
}

// WorkflowRun summarizes one completed quiz generation run.
type WorkflowRun struct {
	ID            int
	RunID         string
	NoteSetID     int // 0 when the run was not tied to a stored note set
	Attempts      int
	BestScore     int
	Outcome       string
	Scores        []int
	QuestionCount int
	StartedAt     time.Time
	DurationMs    int64
}

// RunRepo records workflow run summaries.
type RunRepo interface {
	// RecordRun stores a finished run.
	RecordRun(ctx context.Context, run WorkflowRun) error

	// RunsForNoteSet returns the runs of a note set, newest first.
	RunsForNoteSet(ctx context.Context, noteSetID int) ([]WorkflowRun, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates request counts and token totals for one group key
// (a purpose or a model).
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
