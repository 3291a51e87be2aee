// Package progression is the ledger that survives between runs: essence
// earned, upgrades bought, classes unlocked, and run records.
package progression

import (
	"fmt"
	"time"

	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/game"
	"github.com/lixenwraith/penumbra/parameter"
)

// UpgradeKind is a purchasable permanent bonus.
type UpgradeKind int

const (
	UpgradeHP UpgradeKind = iota
	UpgradeEnergy
	UpgradeDamage
	UpgradeItemTier
	UpgradeLootLuck
)

func (k UpgradeKind) String() string {
	switch k {
	case UpgradeHP:
		return "vitality"
	case UpgradeEnergy:
		return "stamina"
	case UpgradeDamage:
		return "ferocity"
	case UpgradeItemTier:
		return "provisioning"
	case UpgradeLootLuck:
		return "fortune"
	default:
		return "unknown"
	}
}

// MaxLevel is the purchase cap for the kind.
func (k UpgradeKind) MaxLevel() int {
	switch k {
	case UpgradeHP:
		return parameter.UpgradeMaxHP
	case UpgradeEnergy:
		return parameter.UpgradeMaxEnergy
	case UpgradeDamage:
		return parameter.UpgradeMaxDamage
	case UpgradeItemTier:
		return parameter.UpgradeMaxItemTier
	case UpgradeLootLuck:
		return parameter.UpgradeMaxLootLuck
	default:
		return 0
	}
}

// upgradeCosts is the essence price of each purchase, indexed by the level
// being bought (first purchase at index 0).
var upgradeCosts = [...]int{10, 25, 50, 100, 200, 500}

// CostAt is the essence price for buying the next level when the current
// level is the given one.
func CostAt(level int) int {
	if level < 0 || level >= len(upgradeCosts) {
		return upgradeCosts[len(upgradeCosts)-1]
	}
	return upgradeCosts[level]
}

// Record is one finished run in the history.
type Record struct {
	ID            string    `json:"id"`
	FinishedAt    time.Time `json:"finished_at"`
	Class         string    `json:"class"`
	Victory       bool      `json:"victory"`
	Turns         int       `json:"turns"`
	EnemiesKilled int       `json:"enemies_killed"`
	RoomsCleared  int       `json:"rooms_cleared"`
	Level         int       `json:"level"`
	DeathCause    string    `json:"death_cause,omitempty"`
	Seed          uint64    `json:"seed"`
	Essence       int       `json:"essence"`
}

// Progression is the persistent player ledger.
type Progression struct {
	Essence       int                 `json:"essence"`
	TotalEssence  int                 `json:"total_essence"`
	Upgrades      map[UpgradeKind]int `json:"upgrades"`
	Victories     int                 `json:"victories"`
	RunsCompleted int                 `json:"runs_completed"`
	BestKills     int                 `json:"best_kills"`
	FastestWin    int                 `json:"fastest_win"` // turns; 0 when no victory yet
}

// New returns an empty ledger.
func New() *Progression {
	return &Progression{Upgrades: make(map[UpgradeKind]int)}
}

// EssenceFor computes the essence a finished run yields.
func EssenceFor(summary game.Summary) int {
	essence := summary.EnemiesKilled*parameter.EssencePerKill +
		summary.RoomsCleared*parameter.EssencePerRoom
	if summary.Victory {
		essence += parameter.EssenceVictoryBonus
	}
	return essence
}

// CompleteRun banks a run's essence and updates the records. Returns the
// essence earned.
func (p *Progression) CompleteRun(summary game.Summary) int {
	essence := EssenceFor(summary)
	p.Essence += essence
	p.TotalEssence += essence
	p.RunsCompleted++

	if summary.EnemiesKilled > p.BestKills {
		p.BestKills = summary.EnemiesKilled
	}
	if summary.Victory {
		p.Victories++
		if p.FastestWin == 0 || summary.Turns < p.FastestWin {
			p.FastestWin = summary.Turns
		}
	}
	return essence
}

// Buy spends essence on the next level of kind. Errors when at cap or when
// essence is insufficient.
func (p *Progression) Buy(kind UpgradeKind) error {
	level := p.Upgrades[kind]
	if level >= kind.MaxLevel() {
		return fmt.Errorf("%s is already at its cap of %d", kind, kind.MaxLevel())
	}
	cost := CostAt(level)
	if p.Essence < cost {
		return fmt.Errorf("%s costs %d essence, have %d", kind, cost, p.Essence)
	}
	p.Essence -= cost
	if p.Upgrades == nil {
		p.Upgrades = make(map[UpgradeKind]int)
	}
	p.Upgrades[kind] = level + 1
	return nil
}

// Modifiers converts bought upgrades into the bonuses a new run starts with.
func (p *Progression) Modifiers() entity.StatModifiers {
	return entity.StatModifiers{
		BonusMaxHP:       p.Upgrades[UpgradeHP] * parameter.UpgradeHPPerLevel,
		BonusMaxEnergy:   p.Upgrades[UpgradeEnergy] * parameter.UpgradeEnergyPerLevel,
		BonusBaseDamage:  p.Upgrades[UpgradeDamage] * parameter.UpgradeDamagePerLevel,
		StartingItemTier: p.Upgrades[UpgradeItemTier],
		LootLuckPercent:  p.Upgrades[UpgradeLootLuck] * parameter.UpgradeLootLuckPerLevel,
	}
}

// Unlocked reports whether the class is available. CodeWarrior is always
// open; the others unlock as the ledger grows.
func (p *Progression) Unlocked(class entity.PlayerClass) bool {
	switch class {
	case entity.ClassCodeWarrior:
		return true
	case entity.ClassMeetingSurvivor:
		return p.RunsCompleted >= 3
	case entity.ClassInboxKnight:
		return p.TotalEssence >= 100
	case entity.ClassWanderer:
		return p.Victories >= 1
	default:
		return false
	}
}

// UnlockedClasses lists available classes in declaration order.
func (p *Progression) UnlockedClasses() []entity.PlayerClass {
	all := []entity.PlayerClass{
		entity.ClassCodeWarrior,
		entity.ClassMeetingSurvivor,
		entity.ClassInboxKnight,
		entity.ClassWanderer,
	}
	var out []entity.PlayerClass
	for _, c := range all {
		if p.Unlocked(c) {
			out = append(out, c)
		}
	}
	return out
}
