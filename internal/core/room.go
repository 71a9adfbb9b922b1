package core

// Room groups members that share state and broadcasts.
// Its contents are only touched under the owning Registry's lock.
type Room struct {
	Name    string
	members map[string]*member
}

type member struct {
	pose   Pose
	tag    string
	client *Client
}

// NewRoom constructs a room with no members.
func NewRoom(name string) *Room {
	return &Room{
		Name:    name,
		members: make(map[string]*member),
	}
}

// owns reports whether memberID is present and held by c. A nil c matches any holder.
func (r *Room) owns(memberID string, c *Client) (*member, bool) {
	m, ok := r.members[memberID]
	if !ok {
		return nil, false
	}
	if c != nil && m.client != c {
		return nil, false
	}
	return m, true
}

// Empty returns true if no members are in the room.
func (r *Room) Empty() bool {
	return len(r.members) == 0
}
