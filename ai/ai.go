// Package ai decides enemy actions. The default policy pursues the player by
// BFS shortest path and attacks when adjacent; Bug enemies occasionally drift
// in a random open direction instead. Decisions are total functions: invalid
// situations degrade to Idle.
package ai

import (
	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/geom"
	"github.com/lixenwraith/penumbra/parameter"
	"github.com/lixenwraith/penumbra/rng"
)

// ActionKind is what an enemy elects to do this turn.
type ActionKind int

const (
	ActionIdle ActionKind = iota
	ActionMove
	ActionAttack
)

// Action is one enemy decision. Dir is set for moves.
type Action struct {
	Kind ActionKind
	Dir  geom.Point
}

// Terrain is the view of the dungeon the AI needs: walkability including
// occupancy by other enemies. The player's tile is handled separately so
// adjacency can resolve to an attack.
type Terrain interface {
	Open(p geom.Point) bool
}

// Decide picks the enemy's action against the player at playerPos. Draw
// order is fixed: Bug enemies roll erratic-chance first, then (if erratic)
// one direction pick.
func Decide(e *entity.Enemy, playerPos geom.Point, terrain Terrain, src *rng.Source) Action {
	if e.Kind == entity.EnemyBug && src.Float64() < parameter.AIBugErraticChance {
		if dir, ok := randomOpenDir(e.Pos, terrain, src); ok {
			return Action{Kind: ActionMove, Dir: dir}
		}
		return Action{Kind: ActionIdle}
	}

	if geom.Manhattan(e.Pos, playerPos) == 1 {
		return Action{Kind: ActionAttack}
	}

	if step, ok := NextStep(e.Pos, playerPos, terrain); ok {
		return Action{Kind: ActionMove, Dir: geom.Point{X: step.X - e.Pos.X, Y: step.Y - e.Pos.Y}}
	}
	return Action{Kind: ActionIdle}
}

// randomOpenDir picks uniformly among open cardinal moves. One draw even
// when fewer than four are open, so the stream stays aligned.
func randomOpenDir(from geom.Point, terrain Terrain, src *rng.Source) (geom.Point, bool) {
	var open []geom.Point
	for _, dir := range geom.CardinalDirs {
		if terrain.Open(from.Add(dir)) {
			open = append(open, dir)
		}
	}
	if len(open) == 0 {
		src.Intn(1)
		return geom.Point{}, false
	}
	return open[src.Intn(len(open))], true
}

// NextStep finds the first move of a BFS shortest path from from to the
// tile adjacent to goal (the goal tile itself is occupied by the target).
// Directions expand in the fixed cardinal order, so paths are deterministic.
func NextStep(from, goal geom.Point, terrain Terrain) (geom.Point, bool) {
	type node struct {
		pos   geom.Point
		first geom.Point
		depth int
	}

	visited := map[geom.Point]bool{from: true}
	queue := []node{{pos: from}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, dir := range geom.CardinalDirs {
			next := cur.pos.Add(dir)
			if visited[next] {
				continue
			}

			first := cur.first
			if cur.depth == 0 {
				first = next
			}

			if next == goal {
				return first, true
			}
			if !terrain.Open(next) {
				continue
			}
			if cur.depth+1 >= parameter.AIPathLimit {
				continue
			}
			visited[next] = true
			queue = append(queue, node{pos: next, first: first, depth: cur.depth + 1})
		}
	}
	return geom.Point{}, false
}
