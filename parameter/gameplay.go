package parameter

// Energy Costs
const (
	// EnergyCostMove per step
	EnergyCostMove = 1

	// EnergyCostAttack per swing
	EnergyCostAttack = 5

	// EnergyCostDefend per defensive stance
	EnergyCostDefend = 3

	// EnergyCostUseItem per consumed item
	EnergyCostUseItem = 2

	// EnergyWaitRegen recovered by waiting a turn
	EnergyWaitRegen = 2
)

// Player
const (
	// PlayerBaseHP before class and progression bonuses
	PlayerBaseHP = 50

	// PlayerBaseEnergy before progression bonuses
	PlayerBaseEnergy = 100

	// PlayerBaseDamage before class and progression bonuses
	PlayerBaseDamage = 10

	// PlayerBaseDefense before buffs
	PlayerBaseDefense = 0

	// PlayerInventoryCap is max carried items
	PlayerInventoryCap = 10

	// PlayerLevelHPBonus added to max hp on level up
	PlayerLevelHPBonus = 10

	// PlayerXPPerLevel scales the next level threshold
	PlayerXPPerLevel = 100
)

// Sanctuary
const (
	// SanctuaryHealPerTurn recovered standing on a healing zone tile
	SanctuaryHealPerTurn = 2
)

// AI
const (
	// AIBugErraticChance that a Bug ignores pursuit and drifts randomly
	AIBugErraticChance = 0.25

	// AIPathLimit bounds BFS path length per decision
	AIPathLimit = 50
)

// Messages
const (
	// MessageLogCap is max retained log lines
	MessageLogCap = 100
)
