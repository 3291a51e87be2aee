// Package entity defines the combatants and items that populate a dungeon.
// Enemy kinds form a closed set; kind-specific behavior is table lookups and
// switches, never dynamic dispatch.
package entity

import "github.com/lixenwraith/penumbra/history"

// EnemyKind determines base stats and combat behavior.
type EnemyKind int

const (
	EnemyBug EnemyKind = iota
	EnemyRegression
	EnemyTechDebt
	EnemyMergeConflict
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyBug:
		return "Bug"
	case EnemyRegression:
		return "Regression"
	case EnemyTechDebt:
		return "TechDebt"
	case EnemyMergeConflict:
		return "MergeConflict"
	default:
		return "Unknown"
	}
}

// BaseHP for the kind before magnitude scaling.
func (k EnemyKind) BaseHP() int {
	switch k {
	case EnemyBug:
		return 10
	case EnemyRegression:
		return 20
	case EnemyTechDebt:
		return 30
	case EnemyMergeConflict:
		return 50
	default:
		return 10
	}
}

// BaseDamage for the kind before magnitude scaling.
func (k EnemyKind) BaseDamage() int {
	switch k {
	case EnemyBug:
		return 3
	case EnemyRegression:
		return 5
	case EnemyTechDebt:
		return 4
	case EnemyMergeConflict:
		return 8
	default:
		return 3
	}
}

// BaseDefense for the kind before magnitude scaling.
func (k EnemyKind) BaseDefense() int {
	switch k {
	case EnemyMergeConflict:
		return 2
	case EnemyTechDebt:
		return 1
	default:
		return 0
	}
}

// XPReward granted for killing the kind.
func (k EnemyKind) XPReward() int {
	switch k {
	case EnemyBug:
		return 10
	case EnemyRegression:
		return 20
	case EnemyTechDebt:
		return 30
	case EnemyMergeConflict:
		return 50
	default:
		return 10
	}
}

// Symbol is the map glyph for the kind.
func (k EnemyKind) Symbol() rune {
	switch k {
	case EnemyBug:
		return 'b'
	case EnemyRegression:
		return 'R'
	case EnemyTechDebt:
		return 'D'
	case EnemyMergeConflict:
		return 'M'
	default:
		return '?'
	}
}

// KindForCategory maps an event category onto the enemy it spawns.
func KindForCategory(c history.Category) EnemyKind {
	switch c {
	case history.CategoryMerge:
		return EnemyMergeConflict
	case history.CategoryRevert:
		return EnemyRegression
	case history.CategoryRefactor:
		return EnemyTechDebt
	default:
		return EnemyBug
	}
}

// PlayerClass presets starting stats.
type PlayerClass int

const (
	ClassCodeWarrior PlayerClass = iota
	ClassMeetingSurvivor
	ClassInboxKnight
	ClassWanderer
)

func (c PlayerClass) String() string {
	switch c {
	case ClassCodeWarrior:
		return "CodeWarrior"
	case ClassMeetingSurvivor:
		return "MeetingSurvivor"
	case ClassInboxKnight:
		return "InboxKnight"
	case ClassWanderer:
		return "Wanderer"
	default:
		return "Unknown"
	}
}

// Bonuses returns the class's starting hp, energy, and damage bonuses.
func (c PlayerClass) Bonuses() (hp, energy, damage int) {
	switch c {
	case ClassCodeWarrior:
		return 0, 0, 10
	case ClassMeetingSurvivor:
		return 20, 0, 0
	case ClassInboxKnight:
		return 0, 20, 0
	case ClassWanderer:
		return 5, 10, 5
	default:
		return 0, 0, 0
	}
}
