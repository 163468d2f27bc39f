package game

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Store is the process-wide room registry. The mutex guards only the map;
// each Room serializes its own transitions, so traffic to one room never
// slows another. Rooms are never removed, they live for the process.
type Store struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewStore() *Store {
	return &Store{rooms: make(map[string]*Room)}
}

func (s *Store) CreateRoom(roomId, creator string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rooms[roomId]; exists {
		return nil, ErrRoomExists
	}
	room := newRoom(roomId, creator)
	s.rooms[roomId] = room
	log.Info().Str("room", roomId).Str("player", creator).Msg("room created")
	return room, nil
}

func (s *Store) Get(roomId string) (*Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, exists := s.rooms[roomId]
	if !exists {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *Store) JoinRoom(roomId, player string) error {
	room, err := s.Get(roomId)
	if err != nil {
		return err
	}
	if err := room.Join(player); err != nil {
		return err
	}
	log.Info().Str("room", roomId).Str("player", player).Msg("player joined")
	return nil
}

func (s *Store) PlayerCount(roomId string) (int, error) {
	room, err := s.Get(roomId)
	if err != nil {
		return 0, err
	}
	return room.PlayerCount(), nil
}

func (s *Store) SubmitSecret(roomId, player, number string) error {
	room, err := s.Get(roomId)
	if err != nil {
		return err
	}
	return room.SubmitSecret(player, number)
}

func (s *Store) SubmitGuess(roomId, player, number string) (GuessResult, error) {
	room, err := s.Get(roomId)
	if err != nil {
		return GuessResult{}, err
	}
	return room.SubmitGuess(player, number)
}

func (s *Store) Subscribe(roomId, player string, socket NetworkSession) (*subscriber, error) {
	room, err := s.Get(roomId)
	if err != nil {
		return nil, err
	}
	return room.Subscribe(player, socket)
}
