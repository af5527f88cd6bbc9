package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/XXQ0321/charity-events/internal/domain"
	"github.com/XXQ0321/charity-events/internal/handler/dto"
	"github.com/XXQ0321/charity-events/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	List(ctx context.Context, q service.ListEventsQuery) ([]*domain.AnnotatedEvent, error)
	GetByID(ctx context.Context, id int64) (*domain.AnnotatedEvent, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.AnnotatedEvent, error)
	Categories(ctx context.Context) ([]string, error)
}

type ModerationSvc interface {
	Violate(ctx context.Context, id int64) error
}

type Handler struct {
	eventService      EventSvc
	moderationService ModerationSvc
}

func NewHandler(eventService EventSvc, moderationService ModerationSvc) *Handler {
	return &Handler{
		eventService:      eventService,
		moderationService: moderationService,
	}
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	var req dto.ListEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	events, err := h.eventService.List(c.Request.Context(), service.ListEventsQuery{
		Category: req.Category,
		Location: req.Location,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Status:   req.Status,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventResponses(events))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailResponse(event))
}

func (h *Handler) ListEventsByCategory(c *ginext.Context) {
	category := c.Param("category")

	events, err := h.eventService.ListByCategory(c.Request.Context(), category)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventResponses(events))
}

// Categories

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.eventService.Categories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, categories)
}

// Moderation

func (h *Handler) ViolateEvent(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	if err := h.moderationService.Violate(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ViolateResponse{Message: "event marked as violated"})
}

func (h *Handler) eventID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return 0, false
	}

	return id, true
}

func toEventResponses(events []*domain.AnnotatedEvent) []dto.EventResponse {
	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
