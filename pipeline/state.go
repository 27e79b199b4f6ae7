package pipeline

import "fmt"

// State identifies where a pipeline run currently is.
type State string

const (
	StateInit         State = "init"
	StateResearching  State = "researching"
	StateScripting    State = "scripting"
	StateNarrating    State = "narrating"
	StateIllustrating State = "illustrating"
	StateComposing    State = "composing"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

// validTransitions defines the legal run state transitions. Failed is
// reachable from every non-terminal state; Done and Failed are terminal.
var validTransitions = map[State][]State{
	StateInit:         {StateResearching, StateFailed},
	StateResearching:  {StateScripting, StateFailed},
	StateScripting:    {StateNarrating, StateFailed},
	StateNarrating:    {StateIllustrating, StateFailed},
	StateIllustrating: {StateComposing, StateFailed},
	StateComposing:    {StateDone, StateFailed},
	StateDone:         {},
	StateFailed:       {},
}

// CanTransition reports whether a run may move from one state to another.
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ErrInvalidTransition reports an illegal run state transition.
type ErrInvalidTransition struct {
	From State
	To   State
}

func (e ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid state transition: %s -> %s", e.From, e.To)
}
