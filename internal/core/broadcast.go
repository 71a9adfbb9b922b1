package core

import "github.com/rs/zerolog"

// Broadcaster delivers events to the clients attached to a room.
// Delivery is best-effort: a closed client or a full mailbox only affects that client.
type Broadcaster struct {
	registry *Registry
	log      *zerolog.Logger
}

// NewBroadcaster builds a broadcaster reading membership from registry.
func NewBroadcaster(registry *Registry, logger *zerolog.Logger) *Broadcaster {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Broadcaster{registry: registry, log: logger}
}

// RelayToRoom sends ev to every client in room and returns how many accepted it.
func (b *Broadcaster) RelayToRoom(room string, ev *Event) int {
	return b.relay(room, "", ev)
}

// RelayToRoomExcept sends ev to every client in room except the one holding senderID.
func (b *Broadcaster) RelayToRoomExcept(room, senderID string, ev *Event) int {
	return b.relay(room, senderID, ev)
}

// RelayState sends the current snapshot of room to all of its members and
// reports whether the room had any. Snapshot and delivery share one registry
// lock hold, so a "left" is never followed by a state still listing that member.
func (b *Broadcaster) RelayState(room string) bool {
	return b.registry.publishSnapshot(room, func(c *Client, ev *Event) {
		b.deliver(room, c, ev)
	})
}

func (b *Broadcaster) relay(room, except string, ev *Event) int {
	delivered := 0
	for _, c := range b.registry.Recipients(room, except) {
		if b.deliver(room, c, ev) {
			delivered++
		}
	}
	return delivered
}

func (b *Broadcaster) deliver(room string, c *Client, ev *Event) bool {
	if c.Deliver(ev) {
		return true
	}
	if c.Open() {
		b.log.Debug().Str("room", room).Str("client_id", c.ID).Msg("mailbox full, event dropped")
	}
	return false
}
