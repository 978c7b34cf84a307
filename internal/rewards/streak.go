package rewards

import (
	"time"

	"github.com/osse101/CarbonScan_Go/internal/domain"
)

// StreakKind names the transition the tracker took
type StreakKind string

const (
	StreakStarted   StreakKind = "started"
	StreakContinued StreakKind = "continued"
	StreakSameDay   StreakKind = "same_day"
	StreakReset     StreakKind = "reset"
)

// StreakTransition describes one streak update
type StreakTransition struct {
	Kind     StreakKind
	Previous int
	Current  int
	Best     int
}

// IsFirstScanToday reports whether this scan opened a new calendar day
func (t StreakTransition) IsFirstScanToday() bool {
	return t.Kind != StreakSameDay
}

// CalendarDay returns the calendar date of t in loc, encoded as UTC midnight.
// Stored scan dates use this encoding so they round-trip through a SQL DATE.
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// storedDay re-reads a date previously produced by CalendarDay
func storedDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TrackStreak applies today's scan to the user's streak. Time of day is ignored:
// only the calendar day of now in loc matters.
func TrackStreak(state *domain.UserRewardState, now time.Time, loc *time.Location) StreakTransition {
	today := CalendarDay(now, loc)
	prev := state.StreakCount

	var kind StreakKind
	switch {
	case state.LastScanDate == nil:
		kind = StreakStarted
		state.StreakCount = 1
	default:
		last := storedDay(*state.LastScanDate)
		yesterday := today.AddDate(0, 0, -1)
		switch {
		case !last.Before(today):
			// Already scanned today. A stored date ahead of today (clock skew) is treated the same way.
			kind = StreakSameDay
			if state.StreakCount < 1 {
				state.StreakCount = 1
			}
		case last.Equal(yesterday):
			kind = StreakContinued
			state.StreakCount++
		default:
			kind = StreakReset
			state.StreakCount = 1
		}
	}

	if state.StreakCount > state.BestStreakCount {
		state.BestStreakCount = state.StreakCount
	}
	state.LastScanDate = &today

	return StreakTransition{
		Kind:     kind,
		Previous: prev,
		Current:  state.StreakCount,
		Best:     state.BestStreakCount,
	}
}
