package core

import (
	"sync"
	"testing"
)

func TestRegistryJoinZeroesPose(t *testing.T) {
	g := NewRegistry()
	c := NewClient("c1", 1)

	g.Join("r1", "p1", c, "")
	snap := g.Snapshot("r1")
	if got, ok := snap["p1"]; !ok || got != (Pose{}) {
		t.Fatalf("expected zero pose for p1, got %+v (present=%v)", got, ok)
	}
}

func TestRegistryLastJoinWins(t *testing.T) {
	g := NewRegistry()
	a := NewClient("a", 1)
	b := NewClient("b", 1)

	g.Join("r1", "p1", a, "")
	if !g.SetState("r1", "p1", a, Pose{X: 10}) {
		t.Fatal("expected first owner to set state")
	}

	displaced := g.Join("r1", "p1", b, "")
	if displaced != a {
		t.Fatalf("expected displaced client a, got %v", displaced)
	}
	if got := g.Snapshot("r1")["p1"]; got != (Pose{}) {
		t.Fatalf("rejoin should reset pose, got %+v", got)
	}
	if g.SetState("r1", "p1", a, Pose{X: 1}) {
		t.Fatal("displaced client must not update the slot")
	}
	if g.Leave("r1", "p1", a) {
		t.Fatal("displaced client must not remove the slot")
	}
	if !g.IsMember("r1", "p1", b) {
		t.Fatal("second client should own the slot")
	}
}

func TestRegistrySetStateUnknownMemberIsNoop(t *testing.T) {
	g := NewRegistry()
	if g.SetState("ghost", "p1", nil, Pose{X: 1}) {
		t.Fatal("expected no-op for unknown room")
	}

	g.Join("r1", "p1", NewClient("c", 1), "")
	if g.SetState("r1", "p2", nil, Pose{X: 1}) {
		t.Fatal("expected no-op for unknown member")
	}
	if _, ok := g.Snapshot("r1")["p2"]; ok {
		t.Fatal("SetState must not create members")
	}
}

func TestRegistryLeaveReclaimsEmptyRoom(t *testing.T) {
	g := NewRegistry()
	c := NewClient("c", 1)

	for i := 0; i < 100; i++ {
		g.Join("r1", "p1", c, "")
		if !g.Leave("r1", "p1", c) {
			t.Fatalf("cycle %d: leave failed", i)
		}
	}
	if n := g.Len(); n != 0 {
		t.Fatalf("expected no rooms after join/leave cycles, got %d", n)
	}
	if snap := g.Snapshot("r1"); snap != nil {
		t.Fatalf("expected nil snapshot for removed room, got %+v", snap)
	}
}

func TestRegistrySnapshotIsCopy(t *testing.T) {
	g := NewRegistry()
	g.Join("r1", "p1", NewClient("c", 1), "")

	snap := g.Snapshot("r1")
	snap["p1"] = Pose{X: 42}
	delete(snap, "p1")

	if _, ok := g.Snapshot("r1")["p1"]; !ok {
		t.Fatal("mutating a snapshot changed the registry")
	}
}

func TestRegistrySweepRemovesUnjoinedRooms(t *testing.T) {
	g := NewRegistry()
	g.GetOrCreateRoom("lobby")
	g.Join("r1", "p1", NewClient("c", 1), "")

	if got := g.Rooms(); len(got) != 1 || got[0] != "r1" {
		t.Fatalf("expected only r1 listed, got %v", got)
	}
	if n := g.Sweep(); n != 1 {
		t.Fatalf("expected one room swept, got %d", n)
	}
	if n := g.Len(); n != 1 {
		t.Fatalf("expected one room left, got %d", n)
	}
}

func TestRegistryRecipientsExcludesSender(t *testing.T) {
	g := NewRegistry()
	a := NewClient("a", 1)
	b := NewClient("b", 1)
	g.Join("r1", "p1", a, "")
	g.Join("r1", "p2", b, "")

	got := g.Recipients("r1", "p1")
	if len(got) != 1 || got[0] != b {
		t.Fatalf("expected only b, got %v", got)
	}
	if got := g.Recipients("r1", ""); len(got) != 2 {
		t.Fatalf("expected both clients, got %d", len(got))
	}
}

func TestRegistryStatsSorted(t *testing.T) {
	g := NewRegistry()
	g.Join("b", "p1", NewClient("1", 1), "")
	g.Join("a", "p1", NewClient("2", 1), "")
	g.Join("a", "p2", NewClient("3", 1), "")

	stats := g.Stats()
	if len(stats) != 2 || stats[0] != (RoomStats{Name: "a", Members: 2}) || stats[1] != (RoomStats{Name: "b", Members: 1}) {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	g := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := NewClient("c", 1)
			id := string(rune('a' + i))
			for j := 0; j < 200; j++ {
				g.Join("r1", id, c, "")
				g.SetState("r1", id, c, Pose{X: float64(j)})
				_ = g.Snapshot("r1")
				g.Leave("r1", id, c)
			}
		}(i)
	}
	wg.Wait()

	if n := g.Len(); n != 0 {
		t.Fatalf("expected registry to be empty, got %d rooms", n)
	}
}
