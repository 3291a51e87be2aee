package parameter

// Hit Chance
const (
	// CombatBaseHitChance before defense reduction
	CombatBaseHitChance = 0.80

	// CombatHitChancePerDefense is the hit chance lost per point of defender defense
	CombatHitChancePerDefense = 0.03

	// CombatMinHitChance floor keeps every attack resolvable
	CombatMinHitChance = 0.05

	// CombatMaxHitChance ceiling keeps every attack missable
	CombatMaxHitChance = 0.95
)

// Damage
const (
	// CombatMinDamage is the floor for any landed hit
	CombatMinDamage = 1

	// CombatDamageJitterSpan is the exclusive upper bound of the additive damage roll
	CombatDamageJitterSpan = 3

	// CombatDefendReduction divides incoming damage while defending
	CombatDefendReduction = 2
)

// Enemy Reactions
const (
	// CombatRegressionHealPercent of max hp recovered below half health
	CombatRegressionHealPercent = 10

	// CombatTechDebtDamageGrowth added per turn survived
	CombatTechDebtDamageGrowth = 1

	// CombatTechDebtDamageCapFactor bounds growth at this multiple of base damage
	CombatTechDebtDamageCapFactor = 2

	// CombatSplitThresholdPercent of max hp at which MergeConflict splits
	CombatSplitThresholdPercent = 50
)
