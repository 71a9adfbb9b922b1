package proto

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// Inbound is the part of every client frame needed to pick a variant.
// Variant fields live at the top level of the same object.
type Inbound struct {
	Type string `json:"type"`
}

const (
	InboundTypeJoin  = "join"
	InboundTypeMove  = "move"
	InboundTypeShoot = "shoot"

	OutboundTypeState = "state"
	OutboundTypeLeft  = "left"
	OutboundTypeShoot = "shoot"
)

// JoinData requests membership in a room under a client-chosen id.
type JoinData struct {
	Room string `json:"room"`
	ID   string `json:"id"`
	Tag  Tag    `json:"tag,omitempty"`
}

// Tag is an informational label. Strings are kept as they are; any other JSON
// value is kept as its raw text so it never fails the join.
type Tag string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tag) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Tag(s)
		return nil
	}
	*t = Tag(b)
	return nil
}

// MoveData reports the sender's pose. Fields that are missing or not numbers decode leniently.
type MoveData struct {
	X  Number `json:"x"`
	Y  Number `json:"y"`
	Z  Number `json:"z"`
	RY Number `json:"ry"`
}

// Number decodes any JSON value into a float64 without failing the enclosing message.
// Non-numeric values become NaN, out-of-range numbers become ±Inf.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		*n = Number(math.NaN())
		return nil
	}
	*n = Number(f)
	return nil
}

// PlayerState is one member's pose inside a state message.
type PlayerState struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Z  float64 `json:"z"`
	RY float64 `json:"ry"`
}

// StateMessage carries the full membership of a room, sent once per tick.
type StateMessage struct {
	Type    string                 `json:"type"`
	Players map[string]PlayerState `json:"players"`
}

// LeftMessage tells the remaining members that someone departed.
type LeftMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}
