package core

import (
	"sort"
	"sync"
)

// Registry maps room names to their members and last-known poses.
// Every method is safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

// RoomStats is a read-only summary of one room.
type RoomStats struct {
	Name    string `json:"name"`
	Members int    `json:"members"`
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// GetOrCreateRoom returns the named room, creating it when absent.
// A room created here and never joined is reclaimed by Sweep.
func (g *Registry) GetOrCreateRoom(name string) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.roomLocked(name)
}

func (g *Registry) roomLocked(name string) *Room {
	r, ok := g.rooms[name]
	if !ok {
		r = NewRoom(name)
		g.rooms[name] = r
	}
	return r
}

// Join stores a zeroed pose for memberID, replacing any previous slot.
// It returns the client that held the slot before, if any.
func (g *Registry) Join(room, memberID string, c *Client, tag string) *Client {
	g.mu.Lock()
	defer g.mu.Unlock()

	r := g.roomLocked(room)
	var displaced *Client
	if prev, ok := r.members[memberID]; ok {
		displaced = prev.client
	}
	r.members[memberID] = &member{tag: tag, client: c}
	return displaced
}

// SetState updates the pose of memberID. It is a no-op returning false when the
// member is absent or its slot belongs to a client other than c. A nil c skips
// the ownership check.
func (g *Registry) SetState(room, memberID string, c *Client, pose Pose) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rooms[room]
	if !ok {
		return false
	}
	m, ok := r.owns(memberID, c)
	if !ok {
		return false
	}
	m.pose = pose
	return true
}

// IsMember reports whether memberID is in room and held by c (any holder when c is nil).
func (g *Registry) IsMember(room, memberID string, c *Client) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rooms[room]
	if !ok {
		return false
	}
	_, ok = r.owns(memberID, c)
	return ok
}

// Leave removes memberID when its slot belongs to c (any holder when c is nil)
// and deletes the room once it is empty.
func (g *Registry) Leave(room, memberID string, c *Client) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rooms[room]
	if !ok {
		return false
	}
	if _, ok := r.owns(memberID, c); !ok {
		return false
	}
	delete(r.members, memberID)
	if r.Empty() {
		delete(g.rooms, room)
	}
	return true
}

// Snapshot copies the poses of every member in room. It returns nil for an unknown room.
func (g *Registry) Snapshot(room string) map[string]Pose {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rooms[room]
	if !ok {
		return nil
	}
	out := make(map[string]Pose, len(r.members))
	for id, m := range r.members {
		out[id] = m.pose
	}
	return out
}

// publishSnapshot builds a state event for room and passes it to deliver for
// every attached client while the lock is held. A member removed by Leave can
// therefore never appear in a state queued after its departure. deliver must
// not block or call back into the registry.
func (g *Registry) publishSnapshot(room string, deliver func(c *Client, ev *Event)) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rooms[room]
	if !ok || r.Empty() {
		return false
	}
	players := make(map[string]Pose, len(r.members))
	for id, m := range r.members {
		players[id] = m.pose
	}
	ev := &Event{Kind: EventState, Room: room, Players: players}
	for _, m := range r.members {
		if m.client != nil {
			deliver(m.client, ev)
		}
	}
	return true
}

// Recipients lists the clients attached to room, leaving out the member named except.
func (g *Registry) Recipients(room, except string) []*Client {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rooms[room]
	if !ok {
		return nil
	}
	out := make([]*Client, 0, len(r.members))
	for id, m := range r.members {
		if id == except || m.client == nil {
			continue
		}
		out = append(out, m.client)
	}
	return out
}

// Rooms returns the names of all rooms with at least one member.
func (g *Registry) Rooms() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	names := make([]string, 0, len(g.rooms))
	for name, r := range g.rooms {
		if !r.Empty() {
			names = append(names, name)
		}
	}
	return names
}

// Sweep deletes empty rooms and returns how many were removed.
func (g *Registry) Sweep() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for name, r := range g.rooms {
		if r.Empty() {
			delete(g.rooms, name)
			removed++
		}
	}
	return removed
}

// Len returns the number of rooms currently held, empty ones included.
func (g *Registry) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rooms)
}

// Stats summarizes every room, sorted by name.
func (g *Registry) Stats() []RoomStats {
	g.mu.Lock()
	stats := make([]RoomStats, 0, len(g.rooms))
	for name, r := range g.rooms {
		stats = append(stats, RoomStats{Name: name, Members: len(r.members)})
	}
	g.mu.Unlock()

	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}
