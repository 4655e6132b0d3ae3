package session

// Status is the lifecycle state of a quiz session.
type Status int

const (
	StatusInProgress Status = iota // accepting answers
	StatusWon                      // every question answered with a life to spare
	StatusLost                     // ran out of lives
)

// Terminal reports whether the session has ended.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// String returns the storage name of the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}
