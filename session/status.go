package session

// Status is the session lifecycle state. Exactly one holds at any time.
type Status int

const (
	// StatusInitializing: startup verification is in flight; dependent
	// UI must show a neutral loading state.
	StatusInitializing Status = iota
	StatusAnonymous
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
