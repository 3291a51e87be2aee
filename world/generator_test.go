package world

import (
	"testing"
	"time"

	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/geom"
	"github.com/lixenwraith/penumbra/history"
)

func day(offset int) time.Time {
	return time.Date(2026, 3, 1+offset, 12, 0, 0, 0, time.UTC)
}

func event(dayOffset int, cat history.Category, magnitude uint) history.Event {
	return history.Event{
		Timestamp: day(dayOffset),
		Magnitude: magnitude,
		Category:  cat,
		Actors:    1,
	}
}

func TestGenerateDeterministic(t *testing.T) {
	events := []history.Event{
		event(0, history.CategoryNormal, 30),
		event(0, history.CategoryTest, 120),
		event(1, history.CategoryMerge, 500),
		event(2, history.CategoryConfig, 60),
		event(2, history.CategoryDoc, 10),
	}

	a := Generate(events, 1234)
	b := Generate(events, 1234)

	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(a.Rooms), len(b.Rooms))
	}
	for i := range a.Rooms {
		ra, rb := a.Rooms[i], b.Rooms[i]
		if ra.Kind != rb.Kind || ra.Bounds != rb.Bounds {
			t.Errorf("room %d differs: %+v vs %+v", i, ra, rb)
		}
	}
	if len(a.Enemies) != len(b.Enemies) {
		t.Fatalf("enemy counts differ: %d vs %d", len(a.Enemies), len(b.Enemies))
	}
	for i := range a.Enemies {
		ea, eb := a.Enemies[i], b.Enemies[i]
		if ea.Kind != eb.Kind || ea.Pos != eb.Pos || ea.HP != eb.HP || ea.Damage != eb.Damage {
			t.Errorf("enemy %d differs: %+v vs %+v", i, ea, eb)
		}
	}
	for i := range a.Items {
		if a.Items[i] != b.Items[i] {
			t.Errorf("item %d differs: %+v vs %+v", i, a.Items[i], b.Items[i])
		}
	}
}

func TestGenerateSeedChangesPlacement(t *testing.T) {
	events := []history.Event{
		event(0, history.CategoryNormal, 100),
		event(0, history.CategoryNormal, 100),
		event(0, history.CategoryNormal, 100),
	}
	a := Generate(events, 1)
	b := Generate(events, 2)

	same := true
	for i := range a.Enemies {
		if a.Enemies[i].Pos != b.Enemies[i].Pos {
			same = false
		}
	}
	if same {
		t.Error("different seeds should move enemy placements")
	}
}

func TestRoomSizeMonotonic(t *testing.T) {
	prev := 0
	for magnitude := uint(0); magnitude <= 1000; magnitude += 10 {
		size := RoomSize(magnitude)
		if size < prev {
			t.Fatalf("room size decreased at magnitude %d: %d -> %d", magnitude, prev, size)
		}
		prev = size
	}
	if RoomSize(0) != 5 {
		t.Errorf("zero magnitude day should get minimum room, got %d", RoomSize(0))
	}
	if RoomSize(100000) != 11 {
		t.Errorf("room size should saturate at 11, got %d", RoomSize(100000))
	}
}

func TestScaledStatsMonotonic(t *testing.T) {
	prevHP, prevDmg, prevDef := 0, 0, 0
	for magnitude := uint(0); magnitude <= 2000; magnitude += 25 {
		hp, dmg, def := ScaledStats(entity.EnemyBug, magnitude)
		if hp < prevHP || dmg < prevDmg || def < prevDef {
			t.Fatalf("difficulty decreased at magnitude %d", magnitude)
		}
		prevHP, prevDmg, prevDef = hp, dmg, def
	}
}

func TestCategoryPriorityMergeBeatsTest(t *testing.T) {
	events := []history.Event{
		event(0, history.CategoryTest, 50),
		event(0, history.CategoryTest, 50),
		event(0, history.CategoryTest, 50),
		event(0, history.CategoryMerge, 10),
	}
	d := Generate(events, 7)
	if len(d.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(d.Rooms))
	}
	if d.Rooms[0].Kind != RoomBoss {
		t.Errorf("Merge + Test day must be Boss, got %v", d.Rooms[0].Kind)
	}
}

func TestRoomKindMajorities(t *testing.T) {
	cases := []struct {
		name   string
		events []history.Event
		want   RoomKind
	}{
		{
			"test majority",
			[]history.Event{
				event(0, history.CategoryTest, 10),
				event(0, history.CategoryTest, 10),
				event(0, history.CategoryNormal, 10),
			},
			RoomSanctuary,
		},
		{
			"config majority",
			[]history.Event{
				event(0, history.CategoryConfig, 10),
				event(0, history.CategoryConfig, 10),
				event(0, history.CategoryNormal, 10),
			},
			RoomTreasure,
		},
		{
			"no majority",
			[]history.Event{
				event(0, history.CategoryTest, 10),
				event(0, history.CategoryConfig, 10),
				event(0, history.CategoryNormal, 10),
			},
			RoomStandard,
		},
		{
			"equal test and config defers to priority",
			[]history.Event{
				event(0, history.CategoryTest, 10),
				event(0, history.CategoryConfig, 10),
			},
			RoomStandard,
		},
	}
	for _, c := range cases {
		if got := RoomKindFor(c.events); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

// Spec scenario: one Merge day at magnitude 500, seed 42.
func TestBossRoomScenario(t *testing.T) {
	events := []history.Event{event(0, history.CategoryMerge, 500)}
	d := Generate(events, 42)

	if len(d.Rooms) != 1 {
		t.Fatalf("expected exactly one room, got %d", len(d.Rooms))
	}
	room := d.Rooms[0]
	if room.Kind != RoomBoss {
		t.Fatalf("expected Boss room, got %v", room.Kind)
	}

	var conflicts []*entity.Enemy
	for _, id := range room.Enemies {
		e := d.Enemy(id)
		if e.Kind == entity.EnemyMergeConflict {
			conflicts = append(conflicts, e)
		}
	}
	if len(conflicts) != 1 {
		t.Fatalf("Boss room must hold exactly one MergeConflict, got %d", len(conflicts))
	}

	boss := conflicts[0]
	wantHP, _, _ := ScaledStats(entity.EnemyMergeConflict, 500)
	if boss.HP < wantHP {
		t.Errorf("magnitude 500 boss should be in the top hp band, got %d < %d", boss.HP, wantHP)
	}

	// Maximally distant from the entrance: no interior tile is farther.
	bossDist := geom.Manhattan(room.Entrance, boss.Pos)
	for y := room.Bounds.Y + 1; y < room.Bounds.Y+room.Bounds.H-1; y++ {
		for x := room.Bounds.X + 1; x < room.Bounds.X+room.Bounds.W-1; x++ {
			p := geom.Point{X: x, Y: y}
			if d.Walkable(p) && geom.Manhattan(room.Entrance, p) > bossDist {
				t.Fatalf("tile %v is farther from entrance than boss at %v", p, boss.Pos)
			}
		}
	}
}

// Spec scenario: empty event list.
func TestEmptyEventsMinimalDungeon(t *testing.T) {
	d := Generate(nil, 99)

	if len(d.Rooms) != 1 {
		t.Fatalf("expected single minimal room, got %d rooms", len(d.Rooms))
	}
	room := d.Rooms[0]
	if room.Kind != RoomStandard {
		t.Errorf("minimal room should be Standard, got %v", room.Kind)
	}
	if len(room.Enemies) != 0 || len(d.Items) != 0 {
		t.Error("minimal dungeon must have no enemies or items")
	}
	if !room.Cleared {
		t.Error("minimal room should be cleared immediately")
	}
	if room.Bounds.W != 5 || room.Bounds.H != 5 {
		t.Errorf("minimal room should be 5x5, got %dx%d", room.Bounds.W, room.Bounds.H)
	}
}

func TestZeroMagnitudeDayStillYieldsRoom(t *testing.T) {
	events := []history.Event{event(0, history.CategoryNormal, 0)}
	d := Generate(events, 5)
	if len(d.Rooms) != 1 {
		t.Fatalf("zero magnitude day should still yield a room")
	}
	if d.Rooms[0].Bounds.W != 5 {
		t.Errorf("zero magnitude room should be minimum size, got %d", d.Rooms[0].Bounds.W)
	}
}

func TestRoomsChainedByCorridors(t *testing.T) {
	events := []history.Event{
		event(0, history.CategoryNormal, 10),
		event(1, history.CategoryNormal, 10),
		event(2, history.CategoryNormal, 10),
	}
	d := Generate(events, 3)

	if len(d.Rooms) != 3 {
		t.Fatalf("3 days should yield 3 rooms, got %d", len(d.Rooms))
	}
	if len(d.Corridors) != 2 {
		t.Fatalf("3 rooms should have 2 corridors, got %d", len(d.Corridors))
	}
	for i, c := range d.Corridors {
		if c.From != RoomID(i) || c.To != RoomID(i+1) {
			t.Errorf("corridor %d should link room %d to %d, got %+v", i, i, i+1, c)
		}
	}

	// The backbone is walkable: exit of each room connects via corridor
	// floor to the entrance of the next.
	for i := 0; i < len(d.Rooms)-1; i++ {
		exit := d.Rooms[i].Exit
		next := d.Rooms[i+1].Entrance
		for x := exit.X; x <= next.X; x++ {
			p := geom.Point{X: x, Y: exit.Y}
			if !d.Walkable(p) {
				t.Fatalf("backbone tile %v between rooms %d and %d not walkable", p, i, i+1)
			}
		}
	}
}

func TestSanctuarySpawnsNoEnemies(t *testing.T) {
	events := []history.Event{
		event(0, history.CategoryTest, 100),
		event(0, history.CategoryTest, 100),
	}
	d := Generate(events, 11)
	room := d.Rooms[0]
	if room.Kind != RoomSanctuary {
		t.Fatalf("expected Sanctuary, got %v", room.Kind)
	}
	if len(room.Enemies) != 0 {
		t.Errorf("sanctuary must have no enemies, got %d", len(room.Enemies))
	}
	if !room.Cleared {
		t.Error("enemy-free sanctuary should be cleared at creation")
	}
	// Test day drops a HealthPotion.
	if len(room.Items) != 1 {
		t.Fatalf("test day should drop one item, got %d", len(room.Items))
	}
	item, _ := d.Item(room.Items[0])
	if item.Kind != entity.ItemHealthPotion {
		t.Errorf("test day should drop a HealthPotion, got %v", item.Kind)
	}
}

func TestItemDropsByCategory(t *testing.T) {
	events := []history.Event{
		event(0, history.CategoryDoc, 30),
		event(0, history.CategoryNormal, 10),
		event(0, history.CategoryNormal, 10),
	}
	d := Generate(events, 21)
	room := d.Rooms[0]

	if len(room.Items) != 1 {
		t.Fatalf("doc day should drop one item, got %d", len(room.Items))
	}
	item, _ := d.Item(room.Items[0])
	if item.Kind != entity.ItemMapScroll {
		t.Errorf("doc day should drop a MapScroll, got %v", item.Kind)
	}
	if item.Rarity != entity.RarityCommon {
		t.Errorf("magnitude 30 should be Common, got %v", item.Rarity)
	}

	// Items land on free floor, never on an enemy or the entrance.
	if item.Pos == room.Entrance {
		t.Error("item placed on entrance tile")
	}
	if d.EnemyAt(room.ID, item.Pos) != nil {
		t.Error("item placed on an enemy tile")
	}
	if !d.Walkable(item.Pos) {
		t.Error("item placed on unwalkable tile")
	}
}

func TestEnemyKindsFollowCategories(t *testing.T) {
	events := []history.Event{
		event(0, history.CategoryNormal, 100),
		event(0, history.CategoryRevert, 100),
		event(0, history.CategoryRefactor, 100),
	}
	d := Generate(events, 31)
	room := d.Rooms[0]
	if len(room.Enemies) != 3 {
		t.Fatalf("3 events should spawn 3 enemies, got %d", len(room.Enemies))
	}
	wants := []entity.EnemyKind{entity.EnemyBug, entity.EnemyRegression, entity.EnemyTechDebt}
	for i, id := range room.Enemies {
		if e := d.Enemy(id); e.Kind != wants[i] {
			t.Errorf("enemy %d kind = %v, want %v", i, e.Kind, wants[i])
		}
	}
}

func TestEnemyCountCapped(t *testing.T) {
	var events []history.Event
	for i := 0; i < 40; i++ {
		events = append(events, event(0, history.CategoryNormal, 1))
	}
	d := Generate(events, 41)
	room := d.Rooms[0]
	interior := (room.Bounds.W - 2) * (room.Bounds.H - 2)
	limit := interior / 4
	if limit > 10 {
		limit = 10
	}
	if len(room.Enemies) > limit {
		t.Errorf("enemy count %d exceeds cap %d", len(room.Enemies), limit)
	}
}

func TestEnemiesOnDistinctWalkableTiles(t *testing.T) {
	events := []history.Event{
		event(0, history.CategoryNormal, 300),
		event(0, history.CategoryNormal, 300),
		event(0, history.CategoryRevert, 300),
		event(0, history.CategoryRefactor, 300),
	}
	d := Generate(events, 51)
	seen := map[geom.Point]bool{}
	for _, e := range d.Enemies {
		if !d.Walkable(e.Pos) {
			t.Errorf("enemy %d on unwalkable tile %v", e.ID, e.Pos)
		}
		if seen[e.Pos] {
			t.Errorf("two enemies share tile %v", e.Pos)
		}
		seen[e.Pos] = true
	}
}
