package generate

// State is a step in the life of one generation run.
//
//	Idle -> Validating -> Aborted
//	                   -> Rendering -> Failed
//	                                -> Saved
type State int

const (
	StateIdle State = iota
	StateValidating
	StateAborted
	StateRendering
	StateFailed
	StateSaved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateAborted:
		return "aborted"
	case StateRendering:
		return "rendering"
	case StateFailed:
		return "failed"
	case StateSaved:
		return "saved"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition follows s.
func (s State) Terminal() bool {
	return s == StateAborted || s == StateFailed || s == StateSaved
}
