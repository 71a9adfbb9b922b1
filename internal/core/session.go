package core

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/roomrelay/internal/sanitize"
)

// SessionState is the lifecycle position of a Session.
type SessionState int

const (
	StateUnjoined SessionState = iota
	StateJoined
	StateClosed
)

func (s SessionState) String() string {
	switch s {
	case StateUnjoined:
		return "unjoined"
	case StateJoined:
		return "joined"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// Session holds the room identity of one client and applies its commands.
// Room and member are fixed by the first join and never redefined.
type Session struct {
	client      *Client
	registry    *Registry
	broadcaster *Broadcaster
	log         *zerolog.Logger

	mu     sync.Mutex
	state  SessionState
	room   string
	member string
	tag    string
}

// NewSession attaches a fresh, unjoined session to client.
func NewSession(client *Client, registry *Registry, broadcaster *Broadcaster, logger *zerolog.Logger) *Session {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Session{
		client:      client,
		registry:    registry,
		broadcaster: broadcaster,
		log:         logger,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Identity returns the room and member id, empty until joined.
func (s *Session) Identity() (room, member string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.room, s.member
}

// Apply dispatches one decoded command. Returned errors describe why the
// command was ignored; they are for logging only.
func (s *Session) Apply(cmd *Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return ErrSessionClosed
	}

	switch cmd.Kind {
	case CommandJoin:
		return s.join(cmd)
	case CommandMove:
		return s.move(cmd)
	case CommandShoot:
		return s.shoot(cmd)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCommand, cmd.Kind)
	}
}

func (s *Session) join(cmd *Command) error {
	if s.state == StateJoined {
		return fmt.Errorf("%w as %s in %s", ErrAlreadyJoined, s.member, s.room)
	}

	displaced := s.registry.Join(cmd.Room, cmd.Member, s.client, cmd.Tag)
	s.room, s.member, s.tag = cmd.Room, cmd.Member, cmd.Tag
	s.state = StateJoined

	if displaced != nil && displaced != s.client {
		s.log.Info().Str("room", s.room).Str("member", s.member).Str("previous_client", displaced.ID).
			Msg("member id taken over by new connection")
	}
	s.log.Info().Str("room", s.room).Str("member", s.member).Str("tag", s.tag).Str("client_id", s.client.ID).
		Msg("member joined")
	return nil
}

func (s *Session) move(cmd *Command) error {
	if s.state != StateJoined {
		return ErrNotJoined
	}
	x, y, z, ry := sanitize.Pose(cmd.Pose.X, cmd.Pose.Y, cmd.Pose.Z, cmd.Pose.RY)
	if !s.registry.SetState(s.room, s.member, s.client, Pose{X: x, Y: y, Z: z, RY: ry}) {
		return ErrStaleMember
	}
	return nil
}

func (s *Session) shoot(cmd *Command) error {
	if s.state != StateJoined {
		return ErrNotJoined
	}
	if !s.registry.IsMember(s.room, s.member, s.client) {
		return ErrStaleMember
	}
	s.broadcaster.RelayToRoomExcept(s.room, s.member, &Event{
		Kind:    EventShoot,
		Room:    s.room,
		Member:  s.member,
		Payload: cmd.Payload,
	})
	return nil
}

// Close ends the session. A joined member is removed from its room and the
// remaining members are told it left, unless another connection took over its id.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return
	}
	wasJoined := s.state == StateJoined
	s.state = StateClosed
	s.client.Close()

	if !wasJoined {
		return
	}
	if !s.registry.Leave(s.room, s.member, s.client) {
		s.log.Debug().Str("room", s.room).Str("member", s.member).Msg("member slot already taken over, skipping leave")
		return
	}
	s.log.Info().Str("room", s.room).Str("member", s.member).Msg("member left")
	s.broadcaster.RelayToRoom(s.room, &Event{Kind: EventLeft, Room: s.room, Member: s.member})
}
