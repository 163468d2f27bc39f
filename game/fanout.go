package game

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	subscriberOutboxSize = 16
	pingInterval         = time.Second * 30
)

// subscriber is one live notification channel: a player's websocket plus a
// buffered outbox drained by its own write pump. Broadcasts never write to
// the socket directly, so a slow or dead consumer cannot stall the room.
type subscriber struct {
	id      string
	player  string
	socket  NetworkSession
	outbox  chan []byte
	limiter *rate.Limiter
	room    *Room
}

func newSubscriber(id, player string, socket NetworkSession, room *Room) *subscriber {
	return &subscriber{
		id:      id,
		player:  player,
		socket:  socket,
		outbox:  make(chan []byte, subscriberOutboxSize),
		limiter: rate.NewLimiter(1, 5),
		room:    room,
	}
}

// send queues an event frame, dropping it if the outbox is full. Best-effort
// delivery: the triggering state transition must never block here.
func (sub *subscriber) send(data []byte) {
	select {
	case sub.outbox <- data:
	default:
		log.Warn().
			Str("room", sub.room.id).
			Str("player", sub.player).
			Msg("subscriber outbox full, dropping event")
	}
}

// ReadPump consumes inbound frames until the peer goes away. Nothing the
// client sends over this channel is meaningful beyond keepalive; a client
// flooding past the rate limit gets disconnected.
func (sub *subscriber) ReadPump() {
	defer sub.room.Unsubscribe(sub.id)

	for {
		_, err := sub.socket.Read()
		if err != nil {
			log.Debug().
				Str("room", sub.room.id).
				Str("player", sub.player).
				Err(err).
				Msg("subscriber disconnected")
			return
		}
		if !sub.limiter.Allow() {
			sub.socket.Close(websocket.ClosePolicyViolation, "too-many-messages")
			return
		}
	}
}

// WritePump drains the outbox and keeps the connection alive with pings.
// It exits when the outbox is closed by Unsubscribe or a write fails.
func (sub *subscriber) WritePump() {
	pinger := time.NewTicker(pingInterval)
	defer pinger.Stop()

	for {
		select {
		case data, ok := <-sub.outbox:
			if !ok {
				return
			}
			if err := sub.socket.Write(data); err != nil {
				return
			}
		case <-pinger.C:
			if err := sub.socket.Ping(); err != nil {
				return
			}
		}
	}
}
