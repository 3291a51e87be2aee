package entity

import (
	"github.com/lixenwraith/penumbra/geom"
	"github.com/lixenwraith/penumbra/parameter"
)

// EnemyID is a stable identifier unique within one dungeon.
type EnemyID int

// Enemy is one hostile occupant of a room.
type Enemy struct {
	ID         EnemyID    `json:"id"`
	Kind       EnemyKind  `json:"kind"`
	Pos        geom.Point `json:"pos"`
	HP         int        `json:"hp"`
	MaxHP      int        `json:"max_hp"`
	Damage     int        `json:"damage"`
	Defense    int        `json:"defense"`
	TurnsAlive int        `json:"turns_alive"`

	// SpawnDamage is the damage stat at creation; TechDebt growth is capped
	// relative to it.
	SpawnDamage int `json:"spawn_damage"`

	// Split latches after a MergeConflict has spawned its copy; the
	// transition fires at most once per enemy instance.
	Split bool `json:"split"`
}

// NewEnemy creates an enemy of the given kind at pos with kind base stats.
func NewEnemy(id EnemyID, kind EnemyKind, pos geom.Point) *Enemy {
	return &Enemy{
		ID:          id,
		Kind:        kind,
		Pos:         pos,
		HP:          kind.BaseHP(),
		MaxHP:       kind.BaseHP(),
		Damage:      kind.BaseDamage(),
		Defense:     kind.BaseDefense(),
		SpawnDamage: kind.BaseDamage(),
	}
}

// TakeDamage reduces hp, clamping at zero. Reports whether the enemy died.
func (e *Enemy) TakeDamage(amount int) bool {
	e.HP -= amount
	if e.HP < 0 {
		e.HP = 0
	}
	return e.HP == 0
}

// Heal restores hp up to max.
func (e *Enemy) Heal(amount int) {
	e.HP += amount
	if e.HP > e.MaxHP {
		e.HP = e.MaxHP
	}
}

// AtSplitThreshold reports whether hp has crossed the split threshold.
func (e *Enemy) AtSplitThreshold() bool {
	return e.HP*100 <= e.MaxHP*parameter.CombatSplitThresholdPercent
}

// BelowHalfHealth reports whether hp is strictly under half of max.
func (e *Enemy) BelowHalfHealth() bool {
	return e.HP*2 < e.MaxHP
}

// DamageCap is the ceiling TechDebt growth may reach.
func (e *Enemy) DamageCap() int {
	return e.SpawnDamage * parameter.CombatTechDebtDamageCapFactor
}
