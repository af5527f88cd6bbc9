package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/XXQ0321/charity-events/internal/domain"
	"github.com/XXQ0321/charity-events/internal/handler/dto"
	hmocks "github.com/XXQ0321/charity-events/internal/handler/mocks"
	"github.com/XXQ0321/charity-events/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockModerationSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	moderationSvc := hmocks.NewMockModerationSvc(t)

	h := NewHandler(eventSvc, moderationSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/categories", h.ListCategories)
		api.GET("/categories/:category/events", h.ListEventsByCategory)
		api.PUT("/events/:id/violate", h.ViolateEvent)
	}

	return eventSvc, moderationSvc, r
}

func annotated(id int64, name, category string, status domain.Status) *domain.AnnotatedEvent {
	return &domain.AnnotatedEvent{
		Event: domain.Event{
			ID:        id,
			Name:      name,
			Category:  category,
			Location:  "Brisbane",
			StartDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		Status: status,
	}
}

// --- List ---

func TestHandler_ListEvents_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	events := []*domain.AnnotatedEvent{
		annotated(1, "Fun Run", "sports", domain.StatusUpcoming),
		annotated(2, "Gala", "gala", domain.StatusPast),
	}
	eventSvc.EXPECT().List(mock.Anything, service.ListEventsQuery{}).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Fun Run", resp[0].Name)
	assert.Equal(t, "upcoming", resp[0].Status)
	assert.Equal(t, "2025-03-15", resp[0].StartDate)
}

func TestHandler_ListEvents_FiltersForwarded(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().List(mock.Anything, service.ListEventsQuery{
		Category: "music",
		Location: "brisbane",
		DateFrom: "2024-01-01",
		DateTo:   "2024-12-31",
		Status:   "ongoing",
	}).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/events?category=music&location=brisbane&dateFrom=2024-01-01&dateTo=2024-12-31&status=ongoing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListEvents_ValidationError(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, domain.ErrValidation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?status=bogus", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Get ---

func TestHandler_GetEvent_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	goal := 20000.0
	event := annotated(5, "Fun Run", "sports", domain.StatusUpcoming)
	event.Detail = &domain.EventDetail{
		Description:      "5km fun run",
		TicketPrice:      25,
		GoalAmount:       &goal,
		RegistrationForm: "Register online.",
	}
	eventSvc.EXPECT().GetByID(mock.Anything, int64(5)).Return(event, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
	require.NotNil(t, resp.Fundraising)
	assert.Equal(t, 25.0, resp.Fundraising.TicketPrice)
	assert.Equal(t, "Register online.", resp.RegistrationForm)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, int64(999)).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "event not found", resp.Error)
}

// --- Categories ---

func TestHandler_ListCategories_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().Categories(mock.Anything).Return([]string{"auction", "gala", "music"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"auction", "gala", "music"}, resp)
}

func TestHandler_ListCategories_Empty(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().Categories(mock.Anything).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandler_ListEventsByCategory_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	events := []*domain.AnnotatedEvent{
		annotated(4, "Benefit Rock Concert", "music", domain.StatusUpcoming),
	}
	eventSvc.EXPECT().ListByCategory(mock.Anything, "music").Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories/music/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "music", resp[0].Category)
}

// --- Moderation ---

func TestHandler_ViolateEvent_Success(t *testing.T) {
	_, moderationSvc, r := setupRouter(t)

	moderationSvc.EXPECT().Violate(mock.Anything, int64(5)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/5/violate", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ViolateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "event marked as violated", resp.Message)
}

func TestHandler_ViolateEvent_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/abc/violate", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ViolateEvent_NotFound(t *testing.T) {
	_, moderationSvc, r := setupRouter(t)

	moderationSvc.EXPECT().Violate(mock.Anything, int64(999)).Return(domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/999/violate", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
