package quizgen

import "fmt"

// StageError reports the phase and attempt in which a run was aborted,
// either by a failed completion or by context cancellation.
type StageError struct {
	Stage   Phase
	Attempt int
	Err     error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("quiz workflow aborted while %s (attempt %d): %v", e.Stage, e.Attempt, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
