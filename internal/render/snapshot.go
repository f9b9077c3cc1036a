package render

import "errors"

// ErrMissingPayload reports a snapshot that claims success (not
// loading, no error) but carries no data. That combination indicates
// a defect in the producer of the snapshot, not a renderable state.
var ErrMissingPayload = errors.New("render: snapshot has no data, no error, and is not loading")

// Snapshot is the immutable result of one fetch attempt. While
// Loading is true, Err and Data may hold stale values from a previous
// fetch; once Loading is false, at most one of them is set. A new
// snapshot supersedes the old one wholesale.
type Snapshot[T any] struct {
	Loading bool
	Err     error
	Data    *T
}

// Phase identifies which view an Outcome selects.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseFailed
	PhaseSucceeded
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseFailed:
		return "failed"
	case PhaseSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// Outcome is the resolved view decision for one snapshot. Err is set
// only for PhaseFailed and Data only for PhaseSucceeded.
type Outcome[T any] struct {
	Phase Phase
	Err   error
	Data  T
}

// Resolve selects the view for a snapshot, in strict priority order:
// loading wins over everything (stale error and stale data included),
// then a present error, then present data. A snapshot with none of
// the three is reported as ErrMissingPayload rather than mapped to
// any outcome. Resolve never panics.
func Resolve[T any](s Snapshot[T]) (Outcome[T], error) {
	switch {
	case s.Loading:
		return Outcome[T]{Phase: PhaseLoading}, nil
	case s.Err != nil:
		return Outcome[T]{Phase: PhaseFailed, Err: s.Err}, nil
	case s.Data != nil:
		return Outcome[T]{Phase: PhaseSucceeded, Data: *s.Data}, nil
	default:
		return Outcome[T]{}, ErrMissingPayload
	}
}
