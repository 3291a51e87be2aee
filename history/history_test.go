package history

import (
	"testing"
	"time"
)

func at(day, hour int) time.Time {
	return time.Date(2024, 5, day, hour, 0, 0, 0, time.UTC)
}

func TestGroupByDayBucketsAndSorts(t *testing.T) {
	events := []Event{
		{Timestamp: at(3, 9), Magnitude: 10},
		{Timestamp: at(1, 15), Magnitude: 20},
		{Timestamp: at(1, 8), Magnitude: 5},
		{Timestamp: at(2, 12), Magnitude: 7},
	}

	groups := GroupByDay(events)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	for i := 1; i < len(groups); i++ {
		if !groups[i-1].Date.Before(groups[i].Date) {
			t.Fatalf("groups out of order: %v before %v", groups[i-1].Date, groups[i].Date)
		}
	}
	if groups[0].TotalMagnitude() != 25 {
		t.Fatalf("day one magnitude = %d, want 25", groups[0].TotalMagnitude())
	}
	if len(groups[0].Events) != 2 {
		t.Fatalf("day one events = %d, want 2", len(groups[0].Events))
	}
}

func TestFromCommitsCategorizes(t *testing.T) {
	cases := []struct {
		commit Commit
		want   Category
	}{
		{Commit{Message: "Fix login crash"}, CategoryNormal},
		{Commit{Message: "Revert broken deploy"}, CategoryRevert},
		{Commit{Message: "Rollback schema change"}, CategoryRevert},
		{Commit{Message: "Refactor session cache"}, CategoryRefactor},
		{Commit{Message: "Pay down tech debt in parser"}, CategoryRefactor},
		{Commit{Message: "Add tests for auth"}, CategoryTest},
		{Commit{Message: "Update config defaults"}, CategoryConfig},
		{Commit{Message: "Update README"}, CategoryDoc},
		{Commit{Message: "Merge branch main", IsMerge: true}, CategoryMerge},
		// Merge flag wins over keywords.
		{Commit{Message: "Revert via merge", IsMerge: true}, CategoryMerge},
	}
	for _, tc := range cases {
		got := FromCommits([]Commit{tc.commit})
		if got[0].Category != tc.want {
			t.Errorf("%q: category = %v, want %v", tc.commit.Message, got[0].Category, tc.want)
		}
	}
}

func TestFromCommitsMagnitudeAndOrder(t *testing.T) {
	commits := []Commit{
		{Date: at(2, 10), Message: "later", Insertions: 30, Deletions: 12},
		{Date: at(1, 10), Message: "earlier", Insertions: 5},
	}
	events := FromCommits(commits)
	if events[0].Timestamp.After(events[1].Timestamp) {
		t.Fatal("events not sorted by timestamp")
	}
	if events[1].Magnitude != 42 {
		t.Fatalf("magnitude = %d, want insertions+deletions = 42", events[1].Magnitude)
	}
}

func TestFromMeetings(t *testing.T) {
	meetings := []Meeting{
		{Start: at(1, 10), Summary: "All-hands", DurationMinutes: 60, Attendees: 40},
		{Start: at(1, 14), Summary: "1:1 with manager", DurationMinutes: 30, Attendees: 2},
		{Start: at(1, 16), Summary: "Focus block", DurationMinutes: 120, Attendees: 1},
	}
	events := FromMeetings(meetings)
	if events[0].Category != CategoryMerge {
		t.Errorf("all-hands category = %v, want merge", events[0].Category)
	}
	if events[1].Category != CategoryConfig {
		t.Errorf("1:1 category = %v, want config", events[1].Category)
	}
	if events[2].Category != CategoryTest {
		t.Errorf("focus category = %v, want test", events[2].Category)
	}
	if events[0].Magnitude != 60+40*10 {
		t.Errorf("magnitude = %d", events[0].Magnitude)
	}
	if events[0].Actors != 40 {
		t.Errorf("actors = %d, want 40", events[0].Actors)
	}
}

func TestParseGitLog(t *testing.T) {
	raw := []byte(`@@abc123|1714557600|Refactor widget pipeline|deadbeef
12	4	widget/pipeline.go
3	0	widget/pipeline_test.go
@@def456|1714644000|Merge branch feature|deadbeef cafebabe
-	-	asset/logo.png
@@789aaa|1714730400|Fix crash on empty input|deadbeef`)

	commits, err := parseGitLog(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(commits) != 3 {
		t.Fatalf("got %d commits, want 3", len(commits))
	}

	first := commits[0]
	if first.Hash != "abc123" || first.Insertions != 15 || first.Deletions != 4 {
		t.Fatalf("first commit = %+v", first)
	}
	if first.IsMerge {
		t.Fatal("single-parent commit flagged as merge")
	}
	if !commits[1].IsMerge {
		t.Fatal("two-parent commit not flagged as merge")
	}
	// Binary numstat lines contribute nothing.
	if commits[1].Insertions != 0 || commits[1].Deletions != 0 {
		t.Fatalf("merge commit stats = %+v", commits[1])
	}
	if commits[2].Insertions != 0 {
		t.Fatalf("trailing commit stats = %+v", commits[2])
	}
}

func TestParseGitLogMalformed(t *testing.T) {
	if _, err := parseGitLog([]byte("@@not-enough-fields")); err == nil {
		t.Fatal("malformed header accepted")
	}
}
