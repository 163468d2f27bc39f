package game

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	store    *Store
	upgrader websocket.Upgrader
}

func NewHandler(store *Store) *Handler {
	return &Handler{
		store: store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type createRoomRequest struct {
	RoomId string `json:"room_id" binding:"required"`
	Player string `json:"player" binding:"required"`
}

type joinRoomRequest struct {
	RoomId string `json:"room_id" binding:"required"`
	Player string `json:"player" binding:"required"`
}

type submitNumberRequest struct {
	RoomId string `json:"room_id" binding:"required"`
	Player string `json:"player" binding:"required"`
	Number string `json:"number" binding:"required"`
}

func (h *Handler) CreateRoomHandler(ctx *gin.Context) {
	var req createRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "room_id and player are required"})
		return
	}

	if _, err := h.store.CreateRoom(req.RoomId, req.Player); err != nil {
		abortWithGameError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Room created", "room_id": req.RoomId})
}

func (h *Handler) JoinRoomHandler(ctx *gin.Context) {
	var req joinRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "room_id and player are required"})
		return
	}

	if err := h.store.JoinRoom(req.RoomId, req.Player); err != nil {
		abortWithGameError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": req.Player + " joined room " + req.RoomId})
}

func (h *Handler) SubmitNumberHandler(ctx *gin.Context) {
	var req submitNumberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "room_id, player and number are required"})
		return
	}

	if err := h.store.SubmitSecret(req.RoomId, req.Player, req.Number); err != nil {
		abortWithGameError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Number received"})
}

func (h *Handler) PlayHandler(ctx *gin.Context) {
	var req submitNumberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "room_id, player and number are required"})
		return
	}

	result, err := h.store.SubmitGuess(req.RoomId, req.Player, req.Number)
	if err != nil {
		abortWithGameError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (h *Handler) WaitForPlayersHandler(ctx *gin.Context) {
	count, err := h.store.PlayerCount(ctx.Param("roomid"))
	if err != nil {
		abortWithGameError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"connected_players": count})
}

// WebsocketHandler upgrades the connection and subscribes it to the room's
// notification fanout. Membership is checked after the upgrade so the
// rejection arrives as a close frame, not an HTTP error.
func (h *Handler) WebsocketHandler(ctx *gin.Context) {
	roomId := ctx.Param("roomid")
	player := ctx.Param("player")

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Warn().Str("room", roomId).Err(err).Msg("websocket upgrade failed")
		return
	}
	socket := NewWebsocketSession(conn)

	sub, err := h.store.Subscribe(roomId, player, socket)
	if err != nil {
		socket.Close(websocket.ClosePolicyViolation, err.Error())
		return
	}

	go sub.WritePump()
	go sub.ReadPump()
}

func abortWithGameError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotInRoom):
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidNumber):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrRoomExists),
		errors.Is(err, ErrRoomFull),
		errors.Is(err, ErrNameTaken),
		errors.Is(err, ErrRoomNotReady),
		errors.Is(err, ErrSecretsLocked),
		errors.Is(err, ErrNotYourTurn),
		errors.Is(err, ErrGameFinished):
		ctx.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("unexpected game error")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "unknown-error"})
	}
}
