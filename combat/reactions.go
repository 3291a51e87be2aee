package combat

import (
	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/parameter"
)

// Reaction is a kind-specific state change applied at the start of an
// enemy's turn, before its action resolves.
type Reaction int

const (
	ReactionNone Reaction = iota
	// ReactionHeal is Regression self-repair below half health.
	ReactionHeal
	// ReactionGrow is TechDebt damage accretion.
	ReactionGrow
)

// TickReaction applies the enemy's start-of-turn behavior and reports what
// happened. The kind set is closed; anything unlisted does nothing.
func TickReaction(e *entity.Enemy) (Reaction, int) {
	switch e.Kind {
	case entity.EnemyRegression:
		if e.BelowHalfHealth() {
			amount := e.MaxHP * parameter.CombatRegressionHealPercent / 100
			if amount < 1 {
				amount = 1
			}
			before := e.HP
			e.Heal(amount)
			return ReactionHeal, e.HP - before
		}
	case entity.EnemyTechDebt:
		if e.TurnsAlive > 0 && e.Damage < e.DamageCap() {
			e.Damage += parameter.CombatTechDebtDamageGrowth
			if e.Damage > e.DamageCap() {
				e.Damage = e.DamageCap()
			}
			return ReactionGrow, parameter.CombatTechDebtDamageGrowth
		}
	}
	return ReactionNone, 0
}

// ShouldSplit reports whether a MergeConflict hit has pushed the enemy over
// its one-shot split threshold.
func ShouldSplit(e *entity.Enemy) bool {
	return e.Kind == entity.EnemyMergeConflict && !e.Split && e.HP > 0 && e.AtSplitThreshold()
}
