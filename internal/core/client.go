package core

import (
	"sync"
	"sync/atomic"
)

// Client is a connected participant as seen by the core layer.
// Events is drained by the transport's write loop.
type Client struct {
	ID     string
	Events chan *Event

	closed atomic.Bool
	done   chan struct{}
	once   sync.Once
}

// NewClient constructs a client with a mailbox of the given size.
func NewClient(id string, buffer int) *Client {
	if buffer <= 0 {
		buffer = 1
	}
	return &Client{
		ID:     id,
		Events: make(chan *Event, buffer),
		done:   make(chan struct{}),
	}
}

// Deliver queues an event without blocking. It reports false when the client
// is closed or its mailbox is full.
func (c *Client) Deliver(ev *Event) bool {
	if c.closed.Load() {
		return false
	}
	select {
	case c.Events <- ev:
		return true
	default:
		return false
	}
}

// Open reports whether the client still accepts events.
func (c *Client) Open() bool {
	return !c.closed.Load()
}

// Close stops future deliveries. Safe to call more than once.
func (c *Client) Close() {
	c.once.Do(func() {
		c.closed.Store(true)
		close(c.done)
	})
}

// Done is closed once the client is closed.
func (c *Client) Done() <-chan struct{} {
	return c.done
}
