// Package world models the dungeon and generates it deterministically from a
// history event stream and a seed.
package world

// TileKind is one cell of the dungeon grid.
type TileKind int

const (
	// TileVoid is space outside any room or corridor.
	TileVoid TileKind = iota
	TileFloor
	TileWall
	// TileHealing is sanctuary floor; standing on it restores hp.
	TileHealing
	// TileEntrance is a room's west door.
	TileEntrance
	// TileExit is a room's east door; locked until the room is cleared.
	TileExit
)

// Walkable reports whether entities can occupy the tile.
func (t TileKind) Walkable() bool {
	switch t {
	case TileFloor, TileHealing, TileEntrance, TileExit:
		return true
	default:
		return false
	}
}

// Opaque reports whether the tile blocks line of sight.
func (t TileKind) Opaque() bool {
	return t == TileWall || t == TileVoid
}

// Symbol is the map glyph for the tile.
func (t TileKind) Symbol() rune {
	switch t {
	case TileFloor:
		return '.'
	case TileWall:
		return '#'
	case TileHealing:
		return '+'
	case TileEntrance:
		return '<'
	case TileExit:
		return '>'
	default:
		return ' '
	}
}
