package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/penumbra/entity"
	"github.com/lixenwraith/penumbra/game"
	"github.com/lixenwraith/penumbra/history"
)

func TestClassByName(t *testing.T) {
	c, err := classByName("codewarrior")
	if err != nil || c != entity.ClassCodeWarrior {
		t.Fatalf("classByName = %v, %v", c, err)
	}
	c, err = classByName("Wanderer")
	if err != nil || c != entity.ClassWanderer {
		t.Fatalf("classByName = %v, %v", c, err)
	}
	if _, err := classByName("paladin"); err == nil {
		t.Fatal("unknown class accepted")
	}
}

func TestUpgradeByName(t *testing.T) {
	names := []string{"vitality", "stamina", "ferocity", "provisioning", "fortune"}
	for _, name := range names {
		if _, ok := upgradeByName(name); !ok {
			t.Errorf("upgrade %q not found", name)
		}
	}
	if _, ok := upgradeByName("luckiness"); ok {
		t.Error("unknown upgrade accepted")
	}
}

func TestReadCalendar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.json")
	payload := `[
		{"Start": "2024-05-01T10:00:00Z", "Summary": "All-hands", "DurationMinutes": 60, "Attendees": 30},
		{"Start": "2024-05-01T14:00:00Z", "Summary": "Focus block", "DurationMinutes": 90, "Attendees": 1}
	]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	events, err := readCalendar(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Category != history.CategoryMerge {
		t.Fatalf("all-hands category = %v", events[0].Category)
	}
}

func TestReadCalendarMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.json")
	os.WriteFile(path, []byte("not json"), 0o644)
	if _, err := readCalendar(path); err == nil {
		t.Fatal("malformed calendar accepted")
	}
}

func TestBotFinishesEmptyDungeon(t *testing.T) {
	state := game.NewRun(nil, 11, entity.ClassCodeWarrior, entity.StatModifiers{}, 5)
	for i := 0; i < 50 && !state.Over; i++ {
		if _, err := state.AdvanceTurn(botAction(state)); err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
	}
	if !state.Victory {
		t.Fatal("bot failed to cross a single cleared room")
	}
}

func demoEvents() []history.Event {
	var events []history.Event
	for day := 1; day <= 3; day++ {
		for i := 0; i < 2; i++ {
			events = append(events, history.Event{
				Timestamp: time.Date(2024, 6, day, 9+i, 0, 0, 0, time.UTC),
				Magnitude: 80,
				Category:  history.CategoryNormal,
				Actors:    1,
			})
		}
	}
	return events
}

func TestBotDeterministic(t *testing.T) {
	run := func() game.Summary {
		state := game.NewRun(demoEvents(), 5, entity.ClassCodeWarrior, entity.StatModifiers{}, 5)
		for i := 0; i < 500 && !state.Over; i++ {
			state.AdvanceTurn(botAction(state))
		}
		return state.Summarize()
	}
	if a, b := run(), run(); a != b {
		t.Fatalf("summaries diverged: %+v vs %+v", a, b)
	}
}
