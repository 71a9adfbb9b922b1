package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventState carries a room snapshot, emitted every tick.
	EventState EventKind = iota
	// EventLeft notifies remaining members that someone departed.
	EventLeft
	// EventShoot relays a shoot frame from another member verbatim.
	EventShoot
)

// Event is sent to clients to describe what happened in a room.
// A single Event value is shared by every recipient and must not be mutated.
type Event struct {
	Kind    EventKind
	Room    string
	Member  string
	Players map[string]Pose // EventState
	Payload []byte          // EventShoot
}

// Pose is a member's position and yaw.
type Pose struct {
	X  float64
	Y  float64
	Z  float64
	RY float64
}
