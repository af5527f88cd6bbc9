package domain

import "time"

// EventFilter narrows the public event list. Every field is optional; a zero
// value contributes no constraint. Fields combine by logical AND. Hidden
// events are excluded regardless of what the filter says, that constraint is
// not expressible here on purpose.
type EventFilter struct {
	// Category matches exactly, case-sensitive, as stored.
	Category string
	// Location matches as a case-insensitive substring.
	Location string
	// DateFrom keeps events whose start date is on or after it.
	DateFrom *time.Time
	// DateTo keeps events whose end date is on or before it.
	DateTo *time.Time
	// Status keeps events whose derived status equals it.
	Status Status
}
