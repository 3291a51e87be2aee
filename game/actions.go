package game

import (
	"github.com/lixenwraith/penumbra/geom"
	"github.com/lixenwraith/penumbra/parameter"
)

// ActionKind is the player's choice for a turn.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionAttack
	ActionDefend
	ActionUseItem
	ActionWait
)

// PlayerAction is one turn's input. Dir applies to Move and Attack,
// ItemIndex to UseItem.
type PlayerAction struct {
	Kind      ActionKind
	Dir       geom.Point
	ItemIndex int
}

// EnergyCost of the action. Waiting is free; it regenerates instead.
func (a PlayerAction) EnergyCost() int {
	switch a.Kind {
	case ActionMove:
		return parameter.EnergyCostMove
	case ActionAttack:
		return parameter.EnergyCostAttack
	case ActionDefend:
		return parameter.EnergyCostDefend
	case ActionUseItem:
		return parameter.EnergyCostUseItem
	default:
		return 0
	}
}

// Move builds a move action in direction d.
func Move(d geom.Point) PlayerAction {
	return PlayerAction{Kind: ActionMove, Dir: d}
}

// Attack builds an attack action in direction d.
func Attack(d geom.Point) PlayerAction {
	return PlayerAction{Kind: ActionAttack, Dir: d}
}

// UseItem builds an item-use action for the inventory slot at index.
func UseItem(index int) PlayerAction {
	return PlayerAction{Kind: ActionUseItem, ItemIndex: index}
}
