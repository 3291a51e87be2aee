// Package geom holds the grid primitives shared by world, fov, and ai.
package geom

// Point is a tile coordinate on the dungeon grid.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns the grid distance between two points.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// CardinalDirs are the four movement deltas in a fixed order. AI and
// placement code iterate this order so outcomes stay deterministic.
var CardinalDirs = [4]Point{
	{X: 0, Y: -1}, // north
	{X: 0, Y: 1},  // south
	{X: -1, Y: 0}, // west
	{X: 1, Y: 0},  // east
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
