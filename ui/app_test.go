package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/game"
	"github.com/lixenwraith/penumbra/geom"
)

func testState(t *testing.T) *game.State {
	t.Helper()
	return game.NewRun(nil, 1, entity.ClassCodeWarrior, entity.StatModifiers{}, 5)
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestActionForKeyMovement(t *testing.T) {
	s := testState(t)
	cases := []struct {
		ev   *tcell.EventKey
		want geom.Point
	}{
		{key(tcell.KeyUp, 0), geom.Point{Y: -1}},
		{key(tcell.KeyDown, 0), geom.Point{Y: 1}},
		{key(tcell.KeyLeft, 0), geom.Point{X: -1}},
		{key(tcell.KeyRight, 0), geom.Point{X: 1}},
		{key(tcell.KeyRune, 'k'), geom.Point{Y: -1}},
		{key(tcell.KeyRune, 'j'), geom.Point{Y: 1}},
		{key(tcell.KeyRune, 'h'), geom.Point{X: -1}},
		{key(tcell.KeyRune, 'l'), geom.Point{X: 1}},
	}
	for _, tc := range cases {
		action, ok := actionForKey(tc.ev, s)
		if !ok {
			t.Fatalf("key %v not mapped", tc.ev)
		}
		if action.Kind != game.ActionMove || action.Dir != tc.want {
			t.Fatalf("key %v mapped to %+v, want move %+v", tc.ev, action, tc.want)
		}
	}
}

func TestActionForKeyCommands(t *testing.T) {
	s := testState(t)

	action, ok := actionForKey(key(tcell.KeyRune, 'd'), s)
	if !ok || action.Kind != game.ActionDefend {
		t.Fatalf("'d' mapped to %+v", action)
	}
	action, ok = actionForKey(key(tcell.KeyRune, '.'), s)
	if !ok || action.Kind != game.ActionWait {
		t.Fatalf("'.' mapped to %+v", action)
	}
	action, ok = actionForKey(key(tcell.KeyRune, '3'), s)
	if !ok || action.Kind != game.ActionUseItem || action.ItemIndex != 2 {
		t.Fatalf("'3' mapped to %+v", action)
	}
	action, ok = actionForKey(key(tcell.KeyRune, '0'), s)
	if !ok || action.ItemIndex != 9 {
		t.Fatalf("'0' mapped to %+v", action)
	}
	if _, ok := actionForKey(key(tcell.KeyRune, 'z'), s); ok {
		t.Fatal("unmapped rune produced an action")
	}
}

func TestMoveIntoEnemyAttacks(t *testing.T) {
	s := testState(t)

	// Plant an enemy directly east of the player.
	e := entity.NewEnemy(0, entity.EnemyBug, s.Player.Pos.Add(geom.Point{X: 1}))
	s.Dungeon.Enemies = append(s.Dungeon.Enemies, e)
	room := s.Dungeon.Room(s.CurrentRoom)
	room.Enemies = append(room.Enemies, e.ID)

	action, ok := actionForKey(key(tcell.KeyRight, 0), s)
	if !ok || action.Kind != game.ActionAttack {
		t.Fatalf("move into enemy mapped to %+v, want attack", action)
	}
}
