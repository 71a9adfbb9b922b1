package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoin attaches the session to a room under a member id.
	CommandJoin CommandKind = iota
	// CommandMove reports the member's pose.
	CommandMove
	// CommandShoot is a transient event relayed to the rest of the room.
	CommandShoot
)

// Command represents an action requested by a client.
type Command struct {
	Kind   CommandKind
	Room   string
	Member string
	Tag    string
	// Pose is unsanitized; the session clamps it.
	Pose Pose
	// Payload is the original frame for pass-through commands.
	Payload []byte
}
