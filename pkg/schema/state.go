package schema

import "time"

// Phase identifies one step of the validation protocol.
type Phase uint8

const (
	PhasePre Phase = iota + 1
	PhaseFields
	PhasePost
)

func (p Phase) String() string {
	switch p {
	case PhasePre:
		return "pre"
	case PhaseFields:
		return "fields"
	case PhasePost:
		return "post"
	default:
		return "none"
	}
}

// State is the position of one Validate call in the phase protocol.
type State uint8

const (
	StateInit State = iota
	StatePreChecked
	StateFieldsChecked
	StatePostChecked
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePreChecked:
		return "pre_checked"
	case StateFieldsChecked:
		return "fields_checked"
	case StatePostChecked:
		return "post_checked"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome summarizes one finished Validate call.
// FailedPhase is zero and Failures is 0 when the call succeeded.
type Outcome struct {
	Schema      string
	State       State
	FailedPhase Phase
	Failures    int
	Duration    time.Duration
}

// Succeeded reports whether all three phases passed.
func (o Outcome) Succeeded() bool {
	return o.State == StatePostChecked
}

// Observer receives the outcome of every Validate call.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveValidation(Outcome)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Outcome)

func (f ObserverFunc) ObserveValidation(o Outcome) { f(o) }
