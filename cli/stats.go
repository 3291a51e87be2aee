package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsLimitFlag int

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show progression totals and recent runs",
		Run:   runStats,
	}
	cmd.Flags().IntVar(&statsLimitFlag, "limit", 10, "number of runs to list")

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	store := openStore(settings)
	defer store.Close()
	ctx := cmd.Context()

	ledger, err := store.LoadLedger(ctx)
	if err != nil {
		exitErr("load progression", err)
	}

	fmt.Printf("essence: %d banked, %d lifetime\n", ledger.Essence, ledger.TotalEssence)
	fmt.Printf("runs: %d completed, %d victories\n", ledger.RunsCompleted, ledger.Victories)
	if ledger.FastestWin > 0 {
		fmt.Printf("fastest victory: %d turns\n", ledger.FastestWin)
	}
	if ledger.BestKills > 0 {
		fmt.Printf("most kills in a run: %d\n", ledger.BestKills)
	}
	fmt.Print("classes:")
	for _, c := range ledger.UnlockedClasses() {
		fmt.Printf(" %s", c)
	}
	fmt.Println()

	runs, err := store.Runs(ctx, statsLimitFlag)
	if err != nil {
		exitErr("list runs", err)
	}
	if len(runs) == 0 {
		fmt.Println("\nno finished runs yet")
		return
	}

	fmt.Println("\nrecent runs:")
	for _, r := range runs {
		result := "defeat"
		if r.Victory {
			result = "victory"
		} else if r.DeathCause != "" {
			result = "killed by " + r.DeathCause
		}
		fmt.Printf("  %s  %-16s %-24s %4d turns  %3d kills  lvl %d  +%d essence\n",
			r.FinishedAt.Format("2006-01-02"), r.Class, result, r.Turns, r.EnemiesKilled, r.Level, r.Essence)
	}
}
