package dto

// ListEventsRequest binds the optional search query parameters. All fields
// are free-form here; validation happens in the service layer.
type ListEventsRequest struct {
	Category string `form:"category"`
	Location string `form:"location"`
	DateFrom string `form:"dateFrom"`
	DateTo   string `form:"dateTo"`
	Status   string `form:"status"`
}
