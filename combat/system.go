// Package combat resolves single exchanges between combatants. Every input
// is pre-validated by the turn loop, so resolution is total: no errors, no
// panics, all randomness from the run's rng stream.
package combat

import (
	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/parameter"
	"github.com/lixenwraith/penumbra/rng"
)

// Result of one resolved exchange.
type Result struct {
	Hit        bool
	Damage     int
	DefenderHP int
	Killed     bool
}

// HitChance computes the probability that an attack lands against the given
// defense, clamped to the configured band: no guaranteed hit, no guaranteed
// miss.
func HitChance(defense int) float64 {
	chance := parameter.CombatBaseHitChance - float64(defense)*parameter.CombatHitChancePerDefense
	if chance < parameter.CombatMinHitChance {
		chance = parameter.CombatMinHitChance
	}
	if chance > parameter.CombatMaxHitChance {
		chance = parameter.CombatMaxHitChance
	}
	return chance
}

// RollDamage computes a landed hit's damage: attack minus defense plus a
// small jitter, never below the floor.
func RollDamage(attack, defense int, src *rng.Source) int {
	damage := attack - defense + src.Intn(parameter.CombatDamageJitterSpan)
	if damage < parameter.CombatMinDamage {
		damage = parameter.CombatMinDamage
	}
	return damage
}

// PlayerAttack resolves the player striking an enemy. On a miss nothing
// changes. Draw order is fixed: hit roll, then damage jitter.
func PlayerAttack(p *entity.Player, e *entity.Enemy, src *rng.Source) Result {
	if src.Float64() > HitChance(e.Defense) {
		return Result{DefenderHP: e.HP}
	}
	damage := RollDamage(p.Damage, e.Defense, src)
	killed := e.TakeDamage(damage)
	return Result{Hit: true, Damage: damage, DefenderHP: e.HP, Killed: killed}
}

// EnemyAttack resolves an enemy striking the player.
func EnemyAttack(e *entity.Enemy, p *entity.Player, src *rng.Source) Result {
	if src.Float64() > HitChance(p.Defense) {
		return Result{DefenderHP: p.HP}
	}
	dealt, killed := p.TakeDamage(RollDamage(e.Damage, p.Defense, src))
	return Result{Hit: true, Damage: dealt, DefenderHP: p.HP, Killed: killed}
}
