package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/penumbra/game"
	"github.com/lixenwraith/penumbra/progression"
	"github.com/lixenwraith/penumbra/rng"
	"github.com/lixenwraith/penumbra/save"
	"github.com/lixenwraith/penumbra/sound"
	"github.com/lixenwraith/penumbra/ui"
)

var (
	classFlag string
	seedFlag  uint64
)

func init() {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a new run from your recent history",
		Run:   runPlay,
	}
	cmd.Flags().StringVar(&classFlag, "class", "CodeWarrior", "player class")
	cmd.Flags().Uint64Var(&seedFlag, "seed", 0, "dungeon seed (0 picks one at random)")

	RootCmd.AddCommand(cmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	store := openStore(settings)
	defer store.Close()
	ctx := cmd.Context()

	ledger, err := store.LoadLedger(ctx)
	if err != nil {
		exitErr("load progression", err)
	}

	class, err := classByName(classFlag)
	if err != nil {
		exitErr("select class", err)
	}
	if !ledger.Unlocked(class) {
		exitErr("select class", fmt.Errorf("%s is not unlocked yet", class))
	}

	events := mineEvents(settings)
	seed := seedFlag
	if seed == 0 {
		seed = rng.NewSeed()
	}

	state := game.NewRun(events, seed, class, ledger.Modifiers(), settings.FOVRadius)
	runInteractive(ctx, settings.Sound, settings.SaveSlot, store, ledger, state)
}

// runInteractive drives a run through the terminal UI and settles its
// outcome: suspended runs go to the save slot, finished ones to the records.
func runInteractive(ctx context.Context, soundOn bool, slot int, store *save.Store, ledger *progression.Progression, state *game.State) {
	var sounds *sound.Manager
	if soundOn {
		sounds = sound.NewManager()
		// Audio failing is not fatal; the run continues silent.
		if err := sounds.Initialize(); err != nil {
			sounds = nil
		} else {
			defer sounds.Cleanup()
		}
	}

	app, err := ui.NewApp(state, sounds)
	if err != nil {
		exitErr("init terminal", err)
	}
	outcome := app.Run()
	app.Cleanup()

	if outcome == ui.OutcomeSuspended {
		snapshot, err := state.Snapshot()
		if err != nil {
			exitErr("snapshot run", err)
		}
		if err := store.SaveRun(ctx, slot, state.Player.Class.String(), snapshot); err != nil {
			exitErr("save run", err)
		}
		fmt.Printf("Run suspended to slot %d. Resume with `penumbra resume`.\n", slot)
		return
	}

	settleRun(ctx, slot, store, ledger, state)
}

func settleRun(ctx context.Context, slot int, store *save.Store, ledger *progression.Progression, state *game.State) {
	summary := state.Summarize()
	essence := ledger.CompleteRun(summary)

	record := progression.Record{
		FinishedAt:    time.Now().UTC(),
		Class:         state.Player.Class.String(),
		Victory:       summary.Victory,
		Turns:         summary.Turns,
		EnemiesKilled: summary.EnemiesKilled,
		RoomsCleared:  summary.RoomsCleared,
		Level:         summary.Level,
		DeathCause:    summary.DeathCause,
		Seed:          summary.Seed,
		Essence:       essence,
	}
	if _, err := store.RecordRun(ctx, record); err != nil {
		exitErr("record run", err)
	}
	if err := store.SaveLedger(ctx, ledger); err != nil {
		exitErr("save progression", err)
	}
	store.DeleteRun(ctx, slot)

	if summary.Victory {
		fmt.Printf("Victory in %d turns. ", summary.Turns)
	} else {
		fmt.Printf("Defeated by %s after %d turns. ", summary.DeathCause, summary.Turns)
	}
	fmt.Printf("%d enemies down, %d rooms cleared, +%d essence (%d banked).\n",
		summary.EnemiesKilled, summary.RoomsCleared, essence, ledger.Essence)
}
