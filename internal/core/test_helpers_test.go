package core

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

func expectNoEvent(t *testing.T, ch <-chan *Event) {
	t.Helper()

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event: %+v", ev)
	default:
	}
}

func drain(ch <-chan *Event) []*Event {
	var out []*Event
	for {
		select {
		case ev := <-ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func newTestHub() *Hub {
	nop := zerolog.Nop()
	return NewHub(Options{SendBuffer: 16, Logger: &nop})
}

func joinedSession(t *testing.T, h *Hub, clientID, room, member string) (*Client, *Session) {
	t.Helper()

	c := h.NewClient(clientID)
	s := h.NewSession(c)
	if err := s.Apply(&Command{Kind: CommandJoin, Room: room, Member: member}); err != nil {
		t.Fatalf("join %s/%s: %v", room, member, err)
	}
	return c, s
}
