package game

import (
	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/geom"
	"github.com/lixenwraith/penumbra/world"
)

// EventKind tags one observable outcome within a turn.
type EventKind int

const (
	EventPlayerMoved EventKind = iota
	EventPlayerAttacked
	EventPlayerMissed
	EventPlayerDefending
	EventPlayerWaited
	EventPlayerUsedItem
	EventPlayerPickedUp
	EventPlayerLeveledUp
	EventPlayerHealed
	EventEnemyAttacked
	EventEnemyMissed
	EventEnemyMoved
	EventEnemyHealed
	EventEnemyGrew
	EventEnemySplit
	EventEnemyKilled
	EventRoomEntered
	EventRoomCleared
	EventRunEnded
)

// Event is one observable outcome. Fields beyond Kind are set as relevant.
type Event struct {
	Kind      EventKind
	Pos       geom.Point
	Damage    int
	EnemyKind entity.EnemyKind
	ItemKind  entity.ItemKind
	RoomID    world.RoomID
	Level     int
	Victory   bool
}

// TurnOutcome is everything that happened during one AdvanceTurn call, in
// resolution order.
type TurnOutcome struct {
	Events  []Event
	Over    bool
	Victory bool
}
