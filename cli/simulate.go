package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/penumbra/ai"
	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/game"
	"github.com/lixenwraith/penumbra/geom"
	"github.com/lixenwraith/penumbra/parameter"
	"github.com/lixenwraith/penumbra/rng"
)

var (
	simSeedFlag  uint64
	simTurnsFlag int
	simClassFlag string
)

func init() {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a headless bot through the dungeon and print the summary",
		Long: "simulate mines the same history as play, then lets a simple bot\n" +
			"fight through it without a terminal. The same seed always yields\n" +
			"the same summary, which makes it useful for comparing seeds.",
		Run: runSimulate,
	}
	cmd.Flags().Uint64Var(&simSeedFlag, "seed", 0, "dungeon seed (0 picks one at random)")
	cmd.Flags().IntVar(&simTurnsFlag, "turns", 2000, "turn budget before the bot gives up")
	cmd.Flags().StringVar(&simClassFlag, "class", "CodeWarrior", "player class")

	RootCmd.AddCommand(cmd)
}

func runSimulate(cmd *cobra.Command, args []string) {
	settings := loadSettings()

	class, err := classByName(simClassFlag)
	if err != nil {
		exitErr("select class", err)
	}

	events := mineEvents(settings)
	seed := simSeedFlag
	if seed == 0 {
		seed = rng.NewSeed()
	}

	state := game.NewRun(events, seed, class, entity.StatModifiers{}, settings.FOVRadius)
	for i := 0; i < simTurnsFlag && !state.Over; i++ {
		state.AdvanceTurn(botAction(state))
	}

	b, _ := json.MarshalIndent(state.Summarize(), "", "  ")
	fmt.Println(string(b))
}

// botAction is a greedy policy: attack an adjacent enemy, otherwise walk
// toward the nearest one, otherwise head for the exit. It uses no random
// draws, so the whole simulation is a function of the seed.
func botAction(state *game.State) game.PlayerAction {
	if state.Player.Energy < parameter.EnergyCostAttack {
		return game.PlayerAction{Kind: game.ActionWait}
	}
	if state.Player.HP < state.Player.MaxHP/4 {
		if idx := potionIndex(state.Player); idx >= 0 {
			return game.UseItem(idx)
		}
	}

	for _, dir := range geom.CardinalDirs {
		if state.Dungeon.EnemyAt(state.CurrentRoom, state.Player.Pos.Add(dir)) != nil {
			return game.Attack(dir)
		}
	}

	goal, found := nearestEnemy(state)
	if !found {
		room := state.Room()
		if room == nil {
			return game.PlayerAction{Kind: game.ActionWait}
		}
		goal = room.Exit
		if state.Player.Pos.X >= goal.X {
			// On or past the exit, in the corridor: keep pushing east.
			return game.Move(geom.Point{X: 1})
		}
	}

	terrain := botTerrain{state}
	if step, ok := ai.NextStep(state.Player.Pos, goal, terrain); ok {
		return game.Move(geom.Point{X: step.X - state.Player.Pos.X, Y: step.Y - state.Player.Pos.Y})
	}
	if dir, ok := stepToward(state, goal); ok {
		return game.Move(dir)
	}
	return game.PlayerAction{Kind: game.ActionWait}
}

func potionIndex(p *entity.Player) int {
	for i, item := range p.Inventory {
		if item.Kind == entity.ItemHealthPotion {
			return i
		}
	}
	return -1
}

func nearestEnemy(state *game.State) (geom.Point, bool) {
	room := state.Room()
	if room == nil {
		return geom.Point{}, false
	}
	best := geom.Point{}
	bestDist := -1
	for _, id := range room.Enemies {
		e := state.Dungeon.Enemy(id)
		if e == nil || e.HP <= 0 {
			continue
		}
		if dist := geom.Manhattan(state.Player.Pos, e.Pos); bestDist < 0 || dist < bestDist {
			best = e.Pos
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

// stepToward walks straight at the goal when BFS declines, preferring the
// axis with the larger gap.
func stepToward(state *game.State, goal geom.Point) (geom.Point, bool) {
	delta := geom.Point{X: sign(goal.X - state.Player.Pos.X), Y: sign(goal.Y - state.Player.Pos.Y)}
	var options []geom.Point
	if abs(goal.X-state.Player.Pos.X) >= abs(goal.Y-state.Player.Pos.Y) {
		options = []geom.Point{{X: delta.X}, {Y: delta.Y}}
	} else {
		options = []geom.Point{{Y: delta.Y}, {X: delta.X}}
	}
	for _, dir := range options {
		if dir == (geom.Point{}) {
			continue
		}
		target := state.Player.Pos.Add(dir)
		if state.Dungeon.Walkable(target) && state.Dungeon.EnemyAt(state.CurrentRoom, target) == nil {
			return dir, true
		}
	}
	return geom.Point{}, false
}

type botTerrain struct {
	state *game.State
}

func (t botTerrain) Open(p geom.Point) bool {
	if !t.state.Dungeon.Walkable(p) {
		return false
	}
	return t.state.Dungeon.EnemyAt(t.state.CurrentRoom, p) == nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
