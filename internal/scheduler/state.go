package scheduler

// State is where the sweep loop currently is.
type State int32

const (
	StateIdle State = iota
	StateSweeping
	StateReporting
	StateSleeping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSweeping:
		return "sweeping"
	case StateReporting:
		return "reporting"
	case StateSleeping:
		return "sleeping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
