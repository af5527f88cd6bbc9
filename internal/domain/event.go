package domain

import "time"

type Event struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Location  string    `json:"location"`
	StartDate time.Time `json:"event_start_date"`
	EndDate   time.Time `json:"event_end_date"`
	ImageURL  string    `json:"image_url"`
	Violated  bool      `json:"-"`
}

// EventDetail holds the fundraising and registration metadata attached 1:1
// to an event. It never exists without its event.
type EventDetail struct {
	Description      string   `json:"description"`
	Purpose          string   `json:"purpose"`
	TicketPrice      float64  `json:"ticket_price"`
	GoalAmount       *float64 `json:"goal_amount"`
	CurrentAmount    *float64 `json:"current_amount"`
	RegistrationForm string   `json:"registration_form"`
}

// AnnotatedEvent is an event as the read paths return it: joined with its
// detail (nil when none exists) and labelled with the derived status.
type AnnotatedEvent struct {
	Event
	Detail *EventDetail `json:"detail,omitempty"`
	Status Status       `json:"status"`
}
