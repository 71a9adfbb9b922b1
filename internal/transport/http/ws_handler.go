package http

import (
	"context"
	"errors"
	"io"
	stdhttp "net/http"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/roomrelay/internal/config"
	"github.com/vovakirdan/roomrelay/internal/core"
	"github.com/vovakirdan/roomrelay/internal/utils"
)

// WSHandler upgrades HTTP connections and bridges them to a core.Session.
type WSHandler struct {
	hub          *core.Hub
	log          *zerolog.Logger
	readLimit    int64
	writeTimeout time.Duration
	maxPerSecond int
	clock        clock.Clock
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(hub *core.Hub, cfg *config.Config, logger *zerolog.Logger) *WSHandler {
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &WSHandler{
		hub:          hub,
		log:          logger,
		readLimit:    cfg.MaxMessageBytes,
		writeTimeout: writeTimeout,
		maxPerSecond: cfg.MaxMessagesPerSecond,
		clock:        clock.New(),
	}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")
	if h.readLimit > 0 {
		conn.SetReadLimit(h.readLimit)
	}

	client := h.hub.NewClient(utils.NewID())
	session := h.hub.NewSession(client)
	defer session.Close()
	h.log.Debug().Str("client_id", client.ID).Str("remote", r.RemoteAddr).Msg("ws connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, client, session)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, client)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	// Leave the room before the close handshake so the rest of the room hears about it promptly.
	session.Close()

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != -1 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Str("client_id", client.ID).Msg("ws connection closed with error")
		}
	}

	h.log.Debug().Str("client_id", client.ID).Msg("ws disconnected")
	conn.Close(status, reason)
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, client *core.Client, session *core.Session) error {
	limiter := newRateLimiter(h.maxPerSecond, time.Second, h.clock)
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			h.log.Debug().Err(err).Str("client_id", client.ID).Msg("read ws frame")
			return err
		}
		if !limiter.allow() {
			h.log.Debug().Str("client_id", client.ID).Msg("rate limited, frame dropped")
			continue
		}

		cmd, err := inboundToCommand(data)
		if err != nil {
			h.log.Debug().Err(err).Str("client_id", client.ID).Msg("discarding malformed frame")
			continue
		}
		if err := session.Apply(cmd); err != nil {
			h.log.Debug().Err(err).Str("client_id", client.ID).Msg("command ignored")
		}
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, client *core.Client) error {
	for {
		select {
		case event := <-client.Events:
			if err := h.write(ctx, conn, event); err != nil {
				h.log.Debug().Err(err).Str("client_id", client.ID).Msg("write ws event")
				return err
			}
		case <-client.Done():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (h *WSHandler) write(ctx context.Context, conn *websocket.Conn, event *core.Event) error {
	ctx, cancel := context.WithTimeout(ctx, h.writeTimeout)
	defer cancel()

	v, raw := outboundFromEvent(event)
	switch {
	case raw != nil:
		return conn.Write(ctx, websocket.MessageText, raw)
	case v != nil:
		return wsjson.Write(ctx, conn, v)
	default:
		return nil
	}
}
