package http

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/roomrelay/internal/core"
	"github.com/vovakirdan/roomrelay/internal/proto"
)

func TestInboundToCommandJoin(t *testing.T) {
	cmd, err := inboundToCommand([]byte(`{"type":"join","room":"r1","id":"p1","tag":"neo"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Kind != core.CommandJoin || cmd.Room != "r1" || cmd.Member != "p1" || cmd.Tag != "neo" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestInboundToCommandJoinAcceptsAnyTag(t *testing.T) {
	for _, tc := range []struct{ raw, tag string }{
		{`{"type":"join","room":"r1","id":"p1","tag":7}`, "7"},
		{`{"type":"join","room":"r1","id":"p1","tag":{"skin":"red"}}`, `{"skin":"red"}`},
		{`{"type":"join","room":"r1","id":"p1","tag":true}`, "true"},
		{`{"type":"join","room":"r1","id":"p1","tag":null}`, ""},
	} {
		cmd, err := inboundToCommand([]byte(tc.raw))
		if err != nil {
			t.Fatalf("join %s rejected: %v", tc.raw, err)
		}
		if cmd.Kind != core.CommandJoin || cmd.Room != "r1" || cmd.Member != "p1" {
			t.Fatalf("unexpected command for %s: %+v", tc.raw, cmd)
		}
		if cmd.Tag != tc.tag {
			t.Fatalf("tag for %s: want %q, got %q", tc.raw, tc.tag, cmd.Tag)
		}
	}
}

func TestInboundToCommandJoinRequiresRoomAndID(t *testing.T) {
	for _, raw := range []string{
		`{"type":"join","room":"r1"}`,
		`{"type":"join","id":"p1"}`,
		`{"type":"join","room":7,"id":"p1"}`,
	} {
		if _, err := inboundToCommand([]byte(raw)); err == nil {
			t.Fatalf("expected error for %s", raw)
		}
	}
}

func TestInboundToCommandMoveLenient(t *testing.T) {
	cmd, err := inboundToCommand([]byte(`{"type":"move","x":1.5,"y":"up","ry":-2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Kind != core.CommandMove || cmd.Pose.X != 1.5 || cmd.Pose.Z != 0 || cmd.Pose.RY != -2 {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if !math.IsNaN(cmd.Pose.Y) {
		t.Fatalf("non-numeric y should decode as NaN, got %v", cmd.Pose.Y)
	}
}

func TestInboundToCommandShootKeepsFrame(t *testing.T) {
	raw := []byte(`{"type":"shoot","dir":1,"origin":{"x":2}}`)
	cmd, err := inboundToCommand(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Kind != core.CommandShoot || string(cmd.Payload) != string(raw) {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestInboundToCommandMalformed(t *testing.T) {
	for _, raw := range []string{`not json`, `[1,2]`, `{"type":`, `null`} {
		if _, err := inboundToCommand([]byte(raw)); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
	if _, err := inboundToCommand([]byte(`{"type":"dance"}`)); !errors.Is(err, errUnknownType) {
		t.Fatalf("expected errUnknownType, got %v", err)
	}
}

func TestOutboundFromEvent(t *testing.T) {
	v, raw := outboundFromEvent(&core.Event{Kind: core.EventLeft, Member: "p1"})
	if raw != nil || v != (proto.LeftMessage{Type: "left", ID: "p1"}) {
		t.Fatalf("unexpected left mapping: %+v %s", v, raw)
	}

	v, raw = outboundFromEvent(&core.Event{Kind: core.EventState, Players: map[string]core.Pose{"p1": {X: 1, RY: 2}}})
	state, ok := v.(proto.StateMessage)
	if !ok || raw != nil || state.Type != "state" || state.Players["p1"] != (proto.PlayerState{X: 1, RY: 2}) {
		t.Fatalf("unexpected state mapping: %+v", v)
	}

	v, raw = outboundFromEvent(&core.Event{Kind: core.EventShoot, Payload: []byte(`{"type":"shoot"}`)})
	if v != nil || string(raw) != `{"type":"shoot"}` {
		t.Fatalf("unexpected shoot mapping: %+v %s", v, raw)
	}
}
