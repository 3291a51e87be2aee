package parameter

// Room Size
// Footprints include perimeter walls, so the smallest room has a 3x3 interior.
const (
	// RoomSizeMin footprint for a zero-magnitude day
	RoomSizeMin = 5

	// RoomSizeMax footprint clamp
	RoomSizeMax = 11

	// RoomSizeTier2Magnitude lower bound for a 7x7 room
	RoomSizeTier2Magnitude = 20

	// RoomSizeTier3Magnitude lower bound for a 9x9 room
	RoomSizeTier3Magnitude = 50

	// RoomSizeTier4Magnitude lower bound for an 11x11 room
	RoomSizeTier4Magnitude = 200
)

// Corridors
const (
	// CorridorLength in tiles between adjacent rooms
	CorridorLength = 3
)

// Spawning
const (
	// RoomEnemyCap per room regardless of event count
	RoomEnemyCap = 10

	// RoomItemCap per room
	RoomItemCap = 3

	// EnemyHPJitterSpan is the exclusive upper bound of the additive hp roll
	EnemyHPJitterSpan = 3

	// EnemyHPPerMagnitude scales enemy hp with event magnitude
	EnemyHPPerMagnitude = 50

	// EnemyDamagePerMagnitude scales enemy damage with event magnitude
	EnemyDamagePerMagnitude = 200

	// EnemyDefensePerMagnitude scales enemy defense with event magnitude
	EnemyDefensePerMagnitude = 250
)

// Rarity bands by event magnitude.
const (
	// RarityUncommonMagnitude lower bound
	RarityUncommonMagnitude = 50

	// RarityRareMagnitude lower bound
	RarityRareMagnitude = 200

	// RarityLegendaryMagnitude lower bound
	RarityLegendaryMagnitude = 500
)
