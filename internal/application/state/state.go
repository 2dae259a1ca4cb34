package state

// GameState represents the current state of a session
type GameState int

const (
	StatePlaying GameState = iota
	StateEnded
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}
