package domain

import (
	"fmt"
	"time"
)

// Status is the derived lifecycle label of an event. It is computed at read
// time from the date range and never persisted.
type Status string

const (
	StatusPast     Status = "past"
	StatusOngoing  Status = "ongoing"
	StatusUpcoming Status = "upcoming"
)

// Classify maps an event's date range and a reference day to its status.
// Only the calendar date matters, the time of day is discarded. Both range
// boundaries are inclusive: an event is ongoing on its start day and on its
// end day. Every caller that needs a status, whether to label a row or to
// test a status filter, must go through this function.
func Classify(start, end, today time.Time) Status {
	start, end, today = dateOf(start), dateOf(end), dateOf(today)

	switch {
	case end.Before(today):
		return StatusPast
	case !start.After(today):
		return StatusOngoing
	default:
		return StatusUpcoming
	}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseStatus validates a user-supplied status value.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPast, StatusOngoing, StatusUpcoming:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
	}
}
