package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/roomrelay/internal/config"
	"github.com/vovakirdan/roomrelay/internal/core"
)

const landingText = "roomrelay is running; connect a WebSocket client to /ws\n"

// NewServer builds an HTTP server with the relay routes.
func NewServer(hub *core.Hub, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	router.GET("/", landingHandler)
	router.GET("/health", healthHandler)

	rooms := NewRoomHandlers(hub.Registry(), logger)
	router.GET("/api/rooms", rooms.ListRooms)

	// The upgrade hijacks the connection, which gin's response writer refuses.
	mux := stdhttp.NewServeMux()
	mux.Handle("/ws", NewWSHandler(hub, cfg, logger))
	mux.Handle("/", router)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

// landingHandler answers platform health probes that hit the root path.
func landingHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, landingText)
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
