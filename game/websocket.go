package game

import (
	"time"

	"github.com/gorilla/websocket"
)

// NetworkSession is the slice of a websocket connection the engine needs.
// Tests substitute a mock.
type NetworkSession interface {
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
	Close(code int, reason string)
}

type websocketSession struct {
	socket *websocket.Conn
}

func NewWebsocketSession(conn *websocket.Conn) *websocketSession {
	conn.SetPongHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(time.Minute))
		return nil
	})
	return &websocketSession{socket: conn}
}

func (ws *websocketSession) Write(data []byte) error {
	return ws.socket.WriteMessage(websocket.TextMessage, data)
}

func (ws *websocketSession) Read() ([]byte, error) {
	_, p, err := ws.socket.ReadMessage()
	return p, err
}

func (ws *websocketSession) Ping() error {
	return ws.socket.WriteMessage(websocket.PingMessage, nil)
}

func (ws *websocketSession) Close(code int, reason string) {
	ws.socket.SetWriteDeadline(time.Now().Add(time.Second * 20))
	ws.socket.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason))
	ws.socket.Close()
}
