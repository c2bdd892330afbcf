package mines

import "strconv"

// Phase is the state of a game: NotInitialized -> InProgress -> Won | Lost.
type Phase uint8

const (
	NotInitialized Phase = iota
	InProgress
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case NotInitialized:
		return "not initialized"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "Phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// Ended reports whether p is terminal.
func (p Phase) Ended() bool {
	return p == Won || p == Lost
}
