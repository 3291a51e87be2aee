// Package fov computes field of view with recursive shadowcasting. The
// computation is pure: same grid, origin, and radius always produce the same
// visible set.
package fov

import "github.com/lixenwraith/penumbra/geom"

// Point aliases the shared grid coordinate for callers that only import fov.
type Point = geom.Point

// Blocking reports whether the tile at (x, y) occludes sight. Out-of-grid
// coordinates should report true.
type Blocking func(x, y int) bool

// Compute returns the set of tiles visible from origin within radius. The
// grid is swept in 8 octants; an opaque tile is itself visible when reached
// but fully occludes tiles strictly behind it.
func Compute(origin Point, radius int, blocked Blocking) map[Point]bool {
	visible := map[Point]bool{origin: true}
	if radius <= 0 {
		return visible
	}
	for octant := 0; octant < 8; octant++ {
		castLight(visible, origin, radius, 1, 1.0, 0.0, octant, blocked)
	}
	return visible
}

// Visible reports whether target can be seen from origin within radius.
func Visible(origin, target Point, radius int, blocked Blocking) bool {
	return Compute(origin, radius, blocked)[target]
}

// transformOctant maps octant-local deltas onto grid deltas.
func transformOctant(octant, x, y int) (int, int) {
	switch octant {
	case 0:
		return x, y
	case 1:
		return y, x
	case 2:
		return y, -x
	case 3:
		return -x, y
	case 4:
		return -x, -y
	case 5:
		return -y, -x
	case 6:
		return -y, x
	default:
		return x, -y
	}
}

// castLight sweeps rows of one octant, narrowing the [endSlope, startSlope]
// interval as opaque tiles are met. Rows past a fully blocked row are dark.
func castLight(visible map[Point]bool, origin Point, radius, row int, startSlope, endSlope float64, octant int, blocked Blocking) {
	if startSlope < endSlope {
		return
	}

	nextStartSlope := startSlope

	for currentRow := row; currentRow <= radius; currentRow++ {
		rowBlocked := false
		dy := -currentRow

		for dx := -currentRow; dx <= 0; dx++ {
			leftSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rightSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if startSlope < rightSlope {
				continue
			}
			if endSlope > leftSlope {
				break
			}

			tx, ty := transformOctant(octant, dx, dy)
			abs := Point{X: origin.X + tx, Y: origin.Y + ty}

			if dx*dx+dy*dy <= radius*radius {
				visible[abs] = true
			}

			if rowBlocked {
				if blocked(abs.X, abs.Y) {
					nextStartSlope = rightSlope
					continue
				}
				rowBlocked = false
				startSlope = nextStartSlope
			} else if blocked(abs.X, abs.Y) && currentRow < radius {
				rowBlocked = true
				castLight(visible, origin, radius, currentRow+1, startSlope, leftSlope, octant, blocked)
				nextStartSlope = rightSlope
			}
		}

		if rowBlocked {
			break
		}
	}
}
