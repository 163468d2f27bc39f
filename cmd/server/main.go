package main

import (
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Davidomi/MindMatch/config"
	"github.com/Davidomi/MindMatch/game"
)

func CreateServer(allowedOrigins []string, handler *game.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "Server is up and running"})
	})
	r.GET("/health", func(ctx *gin.Context) { ctx.String(http.StatusOK, "healthy") })

	if len(allowedOrigins) > 0 {
		r.Use(func(ctx *gin.Context) {
			origin := ctx.Request.Header.Get("Origin")
			if origin == "" || slices.Contains(allowedOrigins, origin) {
				ctx.Next()
				return
			}
			ctx.String(http.StatusForbidden, "forbidden origin")
			ctx.Abort()
		})

		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowCredentials: true,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{
				"Content-Type",
				"Upgrade",
				"Connection",
				"Sec-WebSocket-Key",
				"Sec-WebSocket-Version",
				"Sec-WebSocket-Extensions",
				"Sec-WebSocket-Protocol",
			},
		}))
	}

	r.POST("/create_room", handler.CreateRoomHandler)
	r.POST("/join_room", handler.JoinRoomHandler)
	r.POST("/submit_number", handler.SubmitNumberHandler)
	r.POST("/play", handler.PlayHandler)
	r.GET("/wait_for_players/:roomid", handler.WaitForPlayersHandler)
	r.GET("/ws/:roomid/:player", handler.WebsocketHandler)

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	gin.SetMode(cfg.GinMode)

	store := game.NewStore()
	handler := game.NewHandler(store)
	r := CreateServer(cfg.AllowedOrigins, handler)

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
