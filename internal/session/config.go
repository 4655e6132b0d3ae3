package session

// Config tunes session scoring. The numbers are game data owned by the
// level designer, not engine constants.
type Config struct {
	// Reward is the score granted per correct answer.
	Reward int

	// Lives is how many wrong answers end the session.
	Lives int
}

// DefaultConfig returns the classic ruleset: 10 points per correct
// answer, three lives.
func DefaultConfig() Config {
	return Config{
		Reward: 10,
		Lives:  3,
	}
}
