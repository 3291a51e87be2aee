// Package history defines the normalized event stream the dungeon is built
// from. Source adapters (git log, calendar files) live outside the core and
// hand it a sorted []Event.
package history

import (
	"sort"
	"time"
)

// Category classifies a source event. Unrecognized source data maps to Normal.
type Category int

const (
	CategoryNormal Category = iota
	CategoryRevert
	CategoryRefactor
	CategoryMerge
	CategoryTest
	CategoryConfig
	CategoryDoc
)

func (c Category) String() string {
	switch c {
	case CategoryNormal:
		return "normal"
	case CategoryRevert:
		return "revert"
	case CategoryRefactor:
		return "refactor"
	case CategoryMerge:
		return "merge"
	case CategoryTest:
		return "test"
	case CategoryConfig:
		return "config"
	case CategoryDoc:
		return "doc"
	default:
		return "unknown"
	}
}

// Event is one normalized source action: a commit or a calendar entry.
// Magnitude is lines changed for commits, minutes for calendar events.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Magnitude uint      `json:"magnitude"`
	Category  Category  `json:"category"`
	Actors    uint      `json:"actors"`
}

// Day returns the calendar date the event belongs to, in UTC.
func (e Event) Day() time.Time {
	y, m, d := e.Timestamp.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayGroup is one calendar day's worth of events, in timestamp order.
type DayGroup struct {
	Date   time.Time
	Events []Event
}

// TotalMagnitude sums event magnitudes for the day.
func (g DayGroup) TotalMagnitude() uint {
	var total uint
	for _, e := range g.Events {
		total += e.Magnitude
	}
	return total
}

// GroupByDay buckets events into chronological per-day groups. Input order
// within a day is preserved; days with no events produce no group.
func GroupByDay(events []Event) []DayGroup {
	buckets := make(map[time.Time][]Event)
	for _, e := range events {
		day := e.Day()
		buckets[day] = append(buckets[day], e)
	}

	days := make([]time.Time, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	groups := make([]DayGroup, 0, len(days))
	for _, day := range days {
		groups = append(groups, DayGroup{Date: day, Events: buckets[day]})
	}
	return groups
}
