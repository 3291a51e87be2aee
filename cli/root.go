// Package cli implements the penumbra commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/penumbra/config"
	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/history"
	"github.com/lixenwraith/penumbra/save"
)

var (
	dbFlag       string
	repoFlag     string
	calendarFlag string
	daysFlag     int
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "penumbra",
	Short: "A roguelike dungeon built from your own history",
	Long: "penumbra turns recent git commits or calendar entries into a dungeon:\n" +
		"every day of work becomes a room, every event an enemy or an item.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "database path (default: $PENUMBRA_DB or ~/.penumbra/penumbra.db)")
	RootCmd.PersistentFlags().StringVar(&repoFlag, "repo", "", "git repository to mine (default: $PENUMBRA_REPO or .)")
	RootCmd.PersistentFlags().StringVar(&calendarFlag, "calendar", "", "calendar JSON file to mine instead of git")
	RootCmd.PersistentFlags().IntVar(&daysFlag, "days", 0, "days of history to mine (default: $PENUMBRA_HISTORY_DAYS)")
}

func loadSettings() config.Settings {
	settings, err := config.Load()
	if err != nil {
		exitErr("load config", err)
	}
	if dbFlag != "" {
		settings.DBPath = dbFlag
	}
	if repoFlag != "" {
		settings.RepoPath = repoFlag
	}
	if daysFlag > 0 {
		settings.HistoryDays = daysFlag
	}
	if settings.RepoPath == "" {
		settings.RepoPath = "."
	}
	return settings
}

func openStore(settings config.Settings) *save.Store {
	store, err := save.Open(settings.DBPath)
	if err != nil {
		exitErr("open database", err)
	}
	return store
}

// mineEvents builds the event stream from the configured source. A repo with
// no recent activity yields an empty stream, which generates the minimal
// dungeon rather than failing.
func mineEvents(settings config.Settings) []history.Event {
	if calendarFlag != "" {
		events, err := readCalendar(calendarFlag)
		if err != nil {
			exitErr("read calendar", err)
		}
		return events
	}
	events, err := history.ReadGitLog(settings.RepoPath, settings.HistoryDays)
	if err != nil {
		exitErr("read git history", err)
	}
	return events
}

func readCalendar(path string) ([]history.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var meetings []history.Meeting
	if err := json.Unmarshal(data, &meetings); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return history.FromMeetings(meetings), nil
}

func classByName(name string) (entity.PlayerClass, error) {
	classes := []entity.PlayerClass{
		entity.ClassCodeWarrior,
		entity.ClassMeetingSurvivor,
		entity.ClassInboxKnight,
		entity.ClassWanderer,
	}
	for _, c := range classes {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown class %q", name)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
