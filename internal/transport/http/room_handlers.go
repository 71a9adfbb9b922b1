package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/roomrelay/internal/core"
)

// RoomHandlers exposes read-only views of the room registry.
type RoomHandlers struct {
	registry *core.Registry
	log      *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(registry *core.Registry, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{
		registry: registry,
		log:      logger,
	}
}

// RoomsResponse lists live rooms.
type RoomsResponse struct {
	Rooms []core.RoomStats `json:"rooms"`
}

// ListRooms returns every room with its member count.
// GET /api/rooms
func (h *RoomHandlers) ListRooms(c *gin.Context) {
	stats := h.registry.Stats()
	h.log.Debug().Int("rooms", len(stats)).Msg("listing rooms")
	c.JSON(http.StatusOK, RoomsResponse{Rooms: stats})
}
