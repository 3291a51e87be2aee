package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/penumbra/game"
	"github.com/lixenwraith/penumbra/save"
)

func init() {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Resume the suspended run",
		Run:   runResume,
	}
	RootCmd.AddCommand(cmd)
}

func runResume(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	store := openStore(settings)
	defer store.Close()
	ctx := cmd.Context()

	snapshot, err := store.LoadRun(ctx, settings.SaveSlot)
	if errors.Is(err, save.ErrNoSave) {
		exitErr("resume", fmt.Errorf("slot %d is empty; start with `penumbra play`", settings.SaveSlot))
	}
	if err != nil {
		exitErr("load run", err)
	}

	state, err := game.Load(snapshot)
	if err != nil {
		// A corrupt save cannot be replayed; clear the slot so play works.
		if errors.Is(err, game.ErrStateCorruption) {
			store.DeleteRun(ctx, settings.SaveSlot)
		}
		exitErr("restore run", err)
	}

	ledger, err := store.LoadLedger(ctx)
	if err != nil {
		exitErr("load progression", err)
	}

	runInteractive(ctx, settings.Sound, settings.SaveSlot, store, ledger, state)
}
