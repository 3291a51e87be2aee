package history

import (
	"sort"
	"strings"
	"time"
)

// Commit is the raw shape a git adapter hands over. Parsing git output or
// repository files is the adapter's problem; only normalization happens here.
type Commit struct {
	Hash       string
	Date       time.Time
	Message    string
	Insertions uint
	Deletions  uint
	IsMerge    bool
}

// Meeting is the raw shape a calendar adapter hands over.
type Meeting struct {
	Start           time.Time
	Summary         string
	DurationMinutes uint
	Attendees       uint
}

// FromCommits normalizes commits into a timestamp-sorted event stream.
func FromCommits(commits []Commit) []Event {
	events := make([]Event, 0, len(commits))
	for _, c := range commits {
		events = append(events, Event{
			Timestamp: c.Date,
			Magnitude: c.Insertions + c.Deletions,
			Category:  categorizeCommit(c),
			Actors:    1,
		})
	}
	sortEvents(events)
	return events
}

// FromMeetings normalizes calendar entries into a timestamp-sorted event
// stream. Magnitude blends duration and headcount so both long and crowded
// meetings grow rooms.
func FromMeetings(meetings []Meeting) []Event {
	events := make([]Event, 0, len(meetings))
	for _, m := range meetings {
		events = append(events, Event{
			Timestamp: m.Start,
			Magnitude: m.DurationMinutes + m.Attendees*10,
			Category:  categorizeMeeting(m),
			Actors:    m.Attendees,
		})
	}
	sortEvents(events)
	return events
}

func categorizeCommit(c Commit) Category {
	if c.IsMerge {
		return CategoryMerge
	}
	msg := strings.ToLower(c.Message)
	switch {
	case strings.Contains(msg, "revert") || strings.Contains(msg, "rollback"):
		return CategoryRevert
	case strings.Contains(msg, "refactor") || strings.Contains(msg, "cleanup") || strings.Contains(msg, "debt"):
		return CategoryRefactor
	case strings.Contains(msg, "test") || strings.Contains(msg, "spec"):
		return CategoryTest
	case strings.Contains(msg, "config") || strings.Contains(msg, "setting"):
		return CategoryConfig
	case strings.Contains(msg, "doc") || strings.Contains(msg, "readme"):
		return CategoryDoc
	default:
		return CategoryNormal
	}
}

func categorizeMeeting(m Meeting) Category {
	summary := strings.ToLower(m.Summary)
	switch {
	case strings.Contains(summary, "all-hands") || strings.Contains(summary, "all hands") || m.Attendees >= 10:
		return CategoryMerge
	case strings.Contains(summary, "focus") || strings.Contains(summary, "deep work") || strings.Contains(summary, "break"):
		return CategoryTest
	case strings.Contains(summary, "1:1") || strings.Contains(summary, "one on one"):
		return CategoryConfig
	case strings.Contains(summary, "review") || strings.Contains(summary, "retro"):
		return CategoryDoc
	default:
		return CategoryNormal
	}
}

func sortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
}
