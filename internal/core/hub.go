package core

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

// DefaultSendBuffer is the per-client mailbox size.
const DefaultSendBuffer = 64

// Options configures a Hub.
type Options struct {
	TickInterval time.Duration
	SendBuffer   int
	Clock        clock.Clock
	Logger       *zerolog.Logger
}

// Hub owns the registry and wires the broadcaster, scheduler and sessions around it.
type Hub struct {
	registry    *Registry
	broadcaster *Broadcaster
	scheduler   *Scheduler
	sendBuffer  int
	log         *zerolog.Logger
}

// NewHub creates a hub with an empty registry.
func NewHub(opts Options) *Hub {
	logger := opts.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if opts.SendBuffer <= 0 {
		opts.SendBuffer = DefaultSendBuffer
	}

	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry, logger)
	return &Hub{
		registry:    registry,
		broadcaster: broadcaster,
		scheduler:   NewScheduler(registry, broadcaster, opts.Clock, opts.TickInterval, logger),
		sendBuffer:  opts.SendBuffer,
		log:         logger,
	}
}

// Run drives the tick scheduler until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	h.scheduler.Run(ctx)
}

// Tick runs one broadcast cycle synchronously.
func (h *Hub) Tick() int {
	return h.scheduler.Tick()
}

// NewClient creates a client with the hub's mailbox size.
func (h *Hub) NewClient(id string) *Client {
	return NewClient(id, h.sendBuffer)
}

// NewSession creates an unjoined session for client.
func (h *Hub) NewSession(client *Client) *Session {
	return NewSession(client, h.registry, h.broadcaster, h.log)
}

// Registry exposes the room registry.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// Broadcaster exposes the broadcaster.
func (h *Hub) Broadcaster() *Broadcaster {
	return h.broadcaster
}
