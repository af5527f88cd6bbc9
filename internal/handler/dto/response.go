package dto

import (
	"github.com/XXQ0321/charity-events/internal/domain"
)

const dateLayout = "2006-01-02"

type EventResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Category    string               `json:"category"`
	Location    string               `json:"location"`
	StartDate   string               `json:"event_start_date"`
	EndDate     string               `json:"event_end_date"`
	ImageURL    string               `json:"image_url,omitempty"`
	Status      string               `json:"status"`
	Fundraising *FundraisingResponse `json:"fundraising,omitempty"`
}

type FundraisingResponse struct {
	Description   string   `json:"description"`
	Purpose       string   `json:"purpose"`
	TicketPrice   float64  `json:"ticket_price"`
	GoalAmount    *float64 `json:"goal_amount,omitempty"`
	CurrentAmount *float64 `json:"current_amount,omitempty"`
}

// EventDetailResponse is the single-event lookup shape. It additionally
// carries the registration notes, which list responses omit.
type EventDetailResponse struct {
	EventResponse
	RegistrationForm string `json:"registration_form,omitempty"`
}

type ViolateResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.AnnotatedEvent) EventResponse {
	resp := EventResponse{
		ID:        e.ID,
		Name:      e.Name,
		Category:  e.Category,
		Location:  e.Location,
		StartDate: e.StartDate.Format(dateLayout),
		EndDate:   e.EndDate.Format(dateLayout),
		ImageURL:  e.ImageURL,
		Status:    string(e.Status),
	}

	if e.Detail != nil {
		resp.Fundraising = &FundraisingResponse{
			Description:   e.Detail.Description,
			Purpose:       e.Detail.Purpose,
			TicketPrice:   e.Detail.TicketPrice,
			GoalAmount:    e.Detail.GoalAmount,
			CurrentAmount: e.Detail.CurrentAmount,
		}
	}

	return resp
}

func ToEventDetailResponse(e *domain.AnnotatedEvent) EventDetailResponse {
	resp := EventDetailResponse{EventResponse: ToEventResponse(e)}
	if e.Detail != nil {
		resp.RegistrationForm = e.Detail.RegistrationForm
	}

	return resp
}
