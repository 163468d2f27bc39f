package game

import "fmt"

const (
	EventTurn     = "turn"
	EventGameOver = "game_over"
)

// Event is what the server pushes to every live subscriber of a room.
// It is marshaled to a JSON text frame as-is.
type Event struct {
	Type    string `json:"type"`
	Player  string `json:"player,omitempty"`
	Winner  string `json:"winner,omitempty"`
	Message string `json:"message"`
}

func TurnEvent(player string) Event {
	return Event{
		Type:    EventTurn,
		Player:  player,
		Message: fmt.Sprintf("It's %s's turn", player),
	}
}

func GameOverEvent(winner string) Event {
	return Event{
		Type:    EventGameOver,
		Winner:  winner,
		Message: fmt.Sprintf("%s guessed the number and won", winner),
	}
}
