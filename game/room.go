package game

import (
	"encoding/json"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Phase int

const (
	PhaseAwaitingPlayers Phase = iota
	PhaseAwaitingSecrets
	PhaseInProgress
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingPlayers:
		return "awaiting-players"
	case PhaseAwaitingSecrets:
		return "awaiting-secrets"
	case PhaseInProgress:
		return "in-progress"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

const maxPlayers = 2

// Room is one two-player session. All state behind the mutex; every
// transition happens with it held, so concurrent requests against the same
// room serialize while distinct rooms never contend.
type Room struct {
	id string

	mu          sync.Mutex
	players     []string
	secrets     [maxPlayers]string
	phase       Phase
	turn        string
	subscribers map[string]*subscriber
}

// GuessResult is the outcome of one scored guess. Incorrect is the count of
// digits present in the opponent's secret at the wrong position.
type GuessResult struct {
	Correct   int    `json:"correct"`
	Incorrect int    `json:"incorrect"`
	NextTurn  string `json:"next_turn"`
	Finished  bool   `json:"-"`
}

func newRoom(id, creator string) *Room {
	return &Room{
		id:          id,
		players:     []string{creator},
		phase:       PhaseAwaitingPlayers,
		subscribers: make(map[string]*subscriber),
	}
}

func (r *Room) Id() string { return r.id }

// Join appends a second player. Names are unique within a room because slot
// order is what pairs a player with the opponent's secret.
func (r *Room) Join(player string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.players) >= maxPlayers {
		return ErrRoomFull
	}
	for _, p := range r.players {
		if p == player {
			return ErrNameTaken
		}
	}
	r.players = append(r.players, player)
	if len(r.players) == maxPlayers {
		r.phase = PhaseAwaitingSecrets
	}
	return nil
}

func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

func (r *Room) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

func (r *Room) Turn() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.turn
}

// SubmitSecret records a player's secret. Until both secrets exist a slot
// may be overwritten (last write wins). Once both are in, the first turn
// holder is picked uniformly at random, the phase moves to InProgress and
// subscribers get the turn announcement.
func (r *Room) SubmitSecret(player, number string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !ValidNumber(number) {
		return ErrInvalidNumber
	}
	slot := r.slotOf(player)
	if slot < 0 {
		return ErrNotInRoom
	}
	if len(r.players) < maxPlayers {
		return ErrRoomNotReady
	}
	if r.phase >= PhaseInProgress {
		return ErrSecretsLocked
	}

	r.secrets[slot] = number

	if r.secrets[0] != "" && r.secrets[1] != "" {
		r.turn = r.players[rand.IntN(maxPlayers)]
		r.phase = PhaseInProgress
		log.Info().Str("room", r.id).Str("turn", r.turn).Msg("game started")
		r.broadcast(TurnEvent(r.turn))
	}
	return nil
}

// SubmitGuess scores a guess against the opponent's secret and hands the
// turn over. Four position matches finish the game; the turn still advances
// so next_turn is populated, but no further guess is accepted.
func (r *Room) SubmitGuess(player, number string) (GuessResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase == PhaseFinished {
		return GuessResult{}, ErrGameFinished
	}
	if r.turn == "" || r.turn != player {
		return GuessResult{}, ErrNotYourTurn
	}
	if !ValidNumber(number) {
		return GuessResult{}, ErrInvalidNumber
	}

	slot := r.slotOf(player)
	opponentSecret := r.secrets[1-slot]

	correct, misplaced := Score(number, opponentSecret)

	r.turn = r.players[1-slot]
	result := GuessResult{
		Correct:   correct,
		Incorrect: misplaced,
		NextTurn:  r.turn,
	}

	if correct == 4 {
		r.phase = PhaseFinished
		result.Finished = true
		log.Info().Str("room", r.id).Str("winner", player).Msg("game finished")
		r.broadcast(GameOverEvent(player))
		return result, nil
	}

	r.broadcast(TurnEvent(r.turn))
	return result, nil
}

// Subscribe attaches a live notification channel for a room member and
// returns it with its pumps not yet running. Unknown players are rejected;
// the caller closes the socket with a policy violation.
func (r *Room) Subscribe(player string, socket NetworkSession) (*subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slotOf(player) < 0 {
		return nil, ErrNotInRoom
	}
	sub := newSubscriber(uuid.NewString(), player, socket, r)
	r.subscribers[sub.id] = sub
	return sub, nil
}

// Unsubscribe detaches a channel. Routine lifecycle, not an error: the room
// and its game state are untouched, a reconnect is simply a new Subscribe.
func (r *Room) Unsubscribe(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.subscribers[id]
	if !ok {
		return
	}
	delete(r.subscribers, id)
	close(sub.outbox)
}

// broadcast queues an event on every live subscriber. Callers hold r.mu;
// queueing is non-blocking so fanout never delays the state transition.
func (r *Room) broadcast(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Error().Str("room", r.id).Err(err).Msg("marshal event")
		return
	}
	for _, sub := range r.subscribers {
		sub.send(data)
	}
}

func (r *Room) slotOf(player string) int {
	for i, p := range r.players {
		if p == player {
			return i
		}
	}
	return -1
}
