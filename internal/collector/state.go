package collector

// State — состояние Loop.
type State int

// Состояния Loop.
const (
	StateAwaitConnection State = iota
	StateFetching
	StatePublishing
	StateSleeping
)

// String возвращает имя состояния.
func (s State) String() string {
	switch s {
	case StateAwaitConnection:
		return "AWAIT_CONNECTION"
	case StateFetching:
		return "FETCHING"
	case StatePublishing:
		return "PUBLISHING"
	case StateSleeping:
		return "SLEEPING"
	default:
		return "UNKNOWN"
	}
}
