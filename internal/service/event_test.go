package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/XXQ0321/charity-events/internal/domain"
	"github.com/XXQ0321/charity-events/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_List_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	events := []*domain.AnnotatedEvent{
		{Event: domain.Event{ID: 1, Name: "Fun Run", Category: "sports"}, Status: domain.StatusUpcoming},
		{Event: domain.Event{ID: 2, Name: "Gala", Category: "gala"}, Status: domain.StatusPast},
	}
	repo.EXPECT().List(mock.Anything, domain.EventFilter{}).Return(events, nil)

	result, err := svc.List(context.Background(), ListEventsQuery{})

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestEventService_List_FilterPassthrough(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().List(mock.Anything, mock.Anything).Run(func(ctx context.Context, f domain.EventFilter) {
		assert.Equal(t, "music", f.Category)
		assert.Equal(t, "brisbane", f.Location)
		require.NotNil(t, f.DateFrom)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *f.DateFrom)
		require.NotNil(t, f.DateTo)
		assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), *f.DateTo)
		assert.Equal(t, domain.StatusOngoing, f.Status)
	}).Return(nil, nil)

	_, err := svc.List(context.Background(), ListEventsQuery{
		Category: "music",
		Location: "brisbane",
		DateFrom: "2024-01-01",
		DateTo:   "2024-12-31",
		Status:   "ongoing",
	})

	require.NoError(t, err)
}

func TestEventService_List_InvalidDateFrom(t *testing.T) {
	svc := NewEventService(nil)

	_, err := svc.List(context.Background(), ListEventsQuery{DateFrom: "01/05/2024"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_List_InvalidDateTo(t *testing.T) {
	svc := NewEventService(nil)

	_, err := svc.List(context.Background(), ListEventsQuery{DateTo: "not-a-date"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_List_InvalidStatus(t *testing.T) {
	svc := NewEventService(nil)

	_, err := svc.List(context.Background(), ListEventsQuery{Status: "finished"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_List_RepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repoErr := errors.New("db error")
	repo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, repoErr)

	_, err := svc.List(context.Background(), ListEventsQuery{})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestEventService_GetByID_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	price := 25.0
	event := &domain.AnnotatedEvent{
		Event:  domain.Event{ID: 5, Name: "Fun Run"},
		Detail: &domain.EventDetail{TicketPrice: price},
		Status: domain.StatusUpcoming,
	}
	repo.EXPECT().GetByID(mock.Anything, int64(5)).Return(event, nil)

	result, err := svc.GetByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), result.ID)
	require.NotNil(t, result.Detail)
	assert.Equal(t, price, result.Detail.TicketPrice)
}

func TestEventService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().GetByID(mock.Anything, int64(999)).Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetByID(context.Background(), 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_ListByCategory(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	events := []*domain.AnnotatedEvent{
		{Event: domain.Event{ID: 1, Category: "music"}, Status: domain.StatusUpcoming},
	}
	repo.EXPECT().List(mock.Anything, domain.EventFilter{Category: "music"}).Return(events, nil)

	result, err := svc.ListByCategory(context.Background(), "music")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "music", result[0].Category)
}

func TestEventService_Categories(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().Categories(mock.Anything).Return([]string{"auction", "gala", "music"}, nil)

	result, err := svc.Categories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"auction", "gala", "music"}, result)
}
