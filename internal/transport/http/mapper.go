package http

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/roomrelay/internal/core"
	"github.com/vovakirdan/roomrelay/internal/proto"
)

var (
	errUnknownType  = errors.New("unknown message type")
	errMissingField = errors.New("missing required field")
)

// inboundToCommand decodes one client frame. Any error means the frame is
// malformed and should be discarded.
func inboundToCommand(data []byte) (*core.Command, error) {
	var inbound proto.Inbound
	if err := json.Unmarshal(data, &inbound); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	switch inbound.Type {
	case proto.InboundTypeJoin:
		var join proto.JoinData
		if err := json.Unmarshal(data, &join); err != nil {
			return nil, fmt.Errorf("decode join: %w", err)
		}
		if join.Room == "" || join.ID == "" {
			return nil, fmt.Errorf("join: %w: room and id", errMissingField)
		}
		return &core.Command{
			Kind:   core.CommandJoin,
			Room:   join.Room,
			Member: join.ID,
			Tag:    string(join.Tag),
		}, nil
	case proto.InboundTypeMove:
		var move proto.MoveData
		if err := json.Unmarshal(data, &move); err != nil {
			return nil, fmt.Errorf("decode move: %w", err)
		}
		return &core.Command{
			Kind: core.CommandMove,
			Pose: core.Pose{
				X:  float64(move.X),
				Y:  float64(move.Y),
				Z:  float64(move.Z),
				RY: float64(move.RY),
			},
		}, nil
	case proto.InboundTypeShoot:
		return &core.Command{
			Kind:    core.CommandShoot,
			Payload: data,
		}, nil
	default:
		return nil, fmt.Errorf("%w %q", errUnknownType, inbound.Type)
	}
}

// outboundFromEvent returns either a value to encode as JSON or, for relayed
// frames, the raw bytes to send as they are.
func outboundFromEvent(event *core.Event) (any, []byte) {
	switch event.Kind {
	case core.EventState:
		players := make(map[string]proto.PlayerState, len(event.Players))
		for id, p := range event.Players {
			players[id] = proto.PlayerState{X: p.X, Y: p.Y, Z: p.Z, RY: p.RY}
		}
		return proto.StateMessage{Type: proto.OutboundTypeState, Players: players}, nil
	case core.EventLeft:
		return proto.LeftMessage{Type: proto.OutboundTypeLeft, ID: event.Member}, nil
	case core.EventShoot:
		return nil, event.Payload
	default:
		return nil, nil
	}
}
