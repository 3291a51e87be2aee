package fov

import "testing"

// gridBlocker builds a Blocking func from an ASCII map where '#' is opaque.
// Coordinates outside the map block sight.
func gridBlocker(rows []string) Blocking {
	return func(x, y int) bool {
		if y < 0 || y >= len(rows) || x < 0 || x >= len(rows[y]) {
			return true
		}
		return rows[y][x] == '#'
	}
}

func TestOriginAlwaysVisible(t *testing.T) {
	blocked := gridBlocker([]string{
		"###",
		"#.#",
		"###",
	})
	visible := Compute(Point{X: 1, Y: 1}, 5, blocked)
	if !visible[Point{X: 1, Y: 1}] {
		t.Fatal("origin must be visible")
	}
}

func TestOpenRoomFullyVisible(t *testing.T) {
	rows := []string{
		"#######",
		"#.....#",
		"#.....#",
		"#.....#",
		"#######",
	}
	visible := Compute(Point{X: 3, Y: 2}, 10, gridBlocker(rows))

	for y := 1; y <= 3; y++ {
		for x := 1; x <= 5; x++ {
			if !visible[Point{X: x, Y: y}] {
				t.Errorf("floor tile (%d,%d) should be visible in open room", x, y)
			}
		}
	}
}

func TestAdjacentTileVisible(t *testing.T) {
	rows := []string{
		"#####",
		"#...#",
		"#####",
	}
	visible := Compute(Point{X: 1, Y: 1}, 5, gridBlocker(rows))
	if !visible[Point{X: 2, Y: 1}] {
		t.Error("unoccluded adjacent tile must be visible")
	}
}

func TestPillarCastsShadow(t *testing.T) {
	rows := []string{
		"#########",
		"#.......#",
		"#.......#",
		"#...#...#",
		"#.......#",
		"#.......#",
		"#########",
	}
	// Observer west of the pillar at (4,3); the tile directly behind it must
	// be dark, the pillar itself lit.
	visible := Compute(Point{X: 2, Y: 3}, 8, gridBlocker(rows))

	if !visible[Point{X: 4, Y: 3}] {
		t.Error("opaque tile itself should be visible when reached")
	}
	if visible[Point{X: 6, Y: 3}] {
		t.Error("tile directly behind pillar should be occluded")
	}
}

func TestWallOccludesNextRoom(t *testing.T) {
	rows := []string{
		"#########",
		"#...#...#",
		"#...#...#",
		"#...#...#",
		"#########",
	}
	visible := Compute(Point{X: 1, Y: 2}, 10, gridBlocker(rows))

	for y := 1; y <= 3; y++ {
		for x := 5; x <= 7; x++ {
			if visible[Point{X: x, Y: y}] {
				t.Errorf("tile (%d,%d) behind solid wall should not be visible", x, y)
			}
		}
	}
}

func TestRadiusBoundsVisibility(t *testing.T) {
	rows := []string{
		"###########",
		"#.........#",
		"###########",
	}
	visible := Compute(Point{X: 1, Y: 1}, 3, gridBlocker(rows))

	if !visible[Point{X: 4, Y: 1}] {
		t.Error("tile at distance 3 should be within radius")
	}
	if visible[Point{X: 9, Y: 1}] {
		t.Error("tile at distance 8 should be beyond radius 3")
	}
}

func TestZeroRadius(t *testing.T) {
	visible := Compute(Point{X: 0, Y: 0}, 0, func(x, y int) bool { return false })
	if len(visible) != 1 || !visible[Point{X: 0, Y: 0}] {
		t.Errorf("zero radius should see only the origin, got %d tiles", len(visible))
	}
}

// Pure function: repeated calls agree exactly.
func TestComputeIsDeterministic(t *testing.T) {
	rows := []string{
		"#########",
		"#..#....#",
		"#...##..#",
		"#.#.....#",
		"#########",
	}
	blocked := gridBlocker(rows)
	a := Compute(Point{X: 1, Y: 1}, 6, blocked)
	b := Compute(Point{X: 1, Y: 1}, 6, blocked)

	if len(a) != len(b) {
		t.Fatalf("visible set sizes differ: %d vs %d", len(a), len(b))
	}
	for p := range a {
		if !b[p] {
			t.Errorf("tile %v present in one computation only", p)
		}
	}
}

func TestVisibleHelper(t *testing.T) {
	rows := []string{
		"#####",
		"#..##",
		"##..#",
		"#####",
	}
	blocked := gridBlocker(rows)
	if !Visible(Point{X: 1, Y: 1}, Point{X: 2, Y: 1}, 5, blocked) {
		t.Error("adjacent open tile should be visible")
	}
}
