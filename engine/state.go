package engine

// State is the scene loop lifecycle
// Running is initial; Terminated is absorbing
type State uint8

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
