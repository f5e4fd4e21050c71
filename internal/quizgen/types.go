package quizgen

import "time"

// QAPair is one generated question with its answer. Both fields are
// trimmed and non-empty.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Phase is a state of the generate-evaluate-retry machine.
type Phase int

const (
	PhaseGenerating Phase = iota
	PhaseEvaluating
	PhaseDeciding
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseGenerating:
		return "generating"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseDeciding:
		return "deciding"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Decision is the outcome of the deciding phase.
type Decision int

const (
	DecisionRegenerate Decision = iota
	DecisionAccept
	DecisionExhausted
)

func (d Decision) String() string {
	switch d {
	case DecisionRegenerate:
		return "regenerate"
	case DecisionAccept:
		return "accept"
	case DecisionExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Outcome reports why a run terminated.
type Outcome string

const (
	// OutcomeAccepted means an attempt reached the quality threshold.
	OutcomeAccepted Outcome = "accepted"

	// OutcomeExhausted means the attempt budget ran out first. The run
	// still returns its best set.
	OutcomeExhausted Outcome = "exhausted"
)

// WorkflowState is the record threaded through one run. It is owned by a
// single run and never shared.
type WorkflowState struct {
	DocumentText string

	CurrentQuestions []QAPair
	CurrentScore     int

	// BestQuestions and BestScore change together, only on a strictly
	// higher score.
	BestQuestions []QAPair
	BestScore     int

	Attempts int
	Phase    Phase
}

// NewState returns the initial state for documentText.
func NewState(documentText string) *WorkflowState {
	return &WorkflowState{
		DocumentText: documentText,
		Phase:        PhaseGenerating,
	}
}

// Evaluation is the result of scoring one question set against the best
// score seen before it.
type Evaluation struct {
	Score       int
	UpdatedBest bool
}

// apply records an evaluation of the current questions.
func (s *WorkflowState) apply(ev Evaluation) {
	s.CurrentScore = ev.Score
	if ev.UpdatedBest {
		s.BestQuestions = s.CurrentQuestions
		s.BestScore = ev.Score
	}
}

// Attempt summarizes one generate-evaluate cycle.
type Attempt struct {
	Number    int
	Questions []QAPair
	Score     int
	Adopted   bool // became the best set
}

// Result is the terminal output of a run.
type Result struct {
	// Questions is the best set observed, never merely the last one.
	// Empty, never nil, when no attempt was adopted.
	Questions []QAPair
	BestScore int
	Attempts  int
	Outcome   Outcome
	History   []Attempt

	StartedAt time.Time
	Duration  time.Duration
}

// Scores returns the score of every attempt in order.
func (r *Result) Scores() []int {
	scores := make([]int, len(r.History))
	for i, a := range r.History {
		scores[i] = a.Score
	}
	return scores
}
