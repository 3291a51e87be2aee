package parameter

// Essence Rewards
const (
	// EssencePerKill earned per enemy defeated
	EssencePerKill = 1

	// EssencePerRoom earned per room cleared
	EssencePerRoom = 5

	// EssenceVictoryBonus earned for finishing the dungeon
	EssenceVictoryBonus = 20
)

// Upgrade Levels
const (
	// UpgradeMaxHP levels purchasable
	UpgradeMaxHP = 5

	// UpgradeMaxEnergy levels purchasable
	UpgradeMaxEnergy = 5

	// UpgradeMaxDamage levels purchasable
	UpgradeMaxDamage = 3

	// UpgradeMaxItemTier levels purchasable
	UpgradeMaxItemTier = 2

	// UpgradeMaxLootLuck levels purchasable
	UpgradeMaxLootLuck = 3
)

// Upgrade Yields
const (
	// UpgradeHPPerLevel added to starting max hp
	UpgradeHPPerLevel = 5

	// UpgradeEnergyPerLevel added to starting max energy
	UpgradeEnergyPerLevel = 2

	// UpgradeDamagePerLevel added to starting damage
	UpgradeDamagePerLevel = 1

	// UpgradeLootLuckPerLevel percent added to drop quality rolls
	UpgradeLootLuckPerLevel = 5
)
