package service

import (
	"context"
	"errors"
	"testing"

	"github.com/XXQ0321/charity-events/internal/domain"
	"github.com/XXQ0321/charity-events/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestModerationService_Violate_Success(t *testing.T) {
	repo := mocks.NewMockModerationRepo(t)
	notifier := mocks.NewMockModerationNotifier(t)
	pub := mocks.NewMockModerationPublisher(t)
	svc := NewModerationService(repo, notifier, pub, newTestLogger(t))

	event := &domain.Event{ID: 5, Name: "Fun Run", Category: "sports", Violated: true}
	repo.EXPECT().MarkViolated(mock.Anything, int64(5)).Return(event, nil)
	pub.EXPECT().PublishEventHidden(mock.Anything, event).Return(nil)
	notifier.EXPECT().NotifyEventHidden(mock.Anything, event)

	err := svc.Violate(context.Background(), 5)

	require.NoError(t, err)
}

func TestModerationService_Violate_NotFound(t *testing.T) {
	repo := mocks.NewMockModerationRepo(t)
	svc := NewModerationService(repo, nil, nil, newTestLogger(t))

	repo.EXPECT().MarkViolated(mock.Anything, int64(999)).Return(nil, domain.ErrEventNotFound)

	err := svc.Violate(context.Background(), 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestModerationService_Violate_Idempotent(t *testing.T) {
	repo := mocks.NewMockModerationRepo(t)
	notifier := mocks.NewMockModerationNotifier(t)
	pub := mocks.NewMockModerationPublisher(t)
	svc := NewModerationService(repo, notifier, pub, newTestLogger(t))

	// The store reports success for an already hidden event, so a repeated
	// violate is a no-op success, not an error.
	event := &domain.Event{ID: 5, Name: "Fun Run", Violated: true}
	repo.EXPECT().MarkViolated(mock.Anything, int64(5)).Return(event, nil).Twice()
	pub.EXPECT().PublishEventHidden(mock.Anything, event).Return(nil).Twice()
	notifier.EXPECT().NotifyEventHidden(mock.Anything, event).Twice()

	require.NoError(t, svc.Violate(context.Background(), 5))
	require.NoError(t, svc.Violate(context.Background(), 5))
}

func TestModerationService_Violate_PublishFailureIsNotFatal(t *testing.T) {
	repo := mocks.NewMockModerationRepo(t)
	notifier := mocks.NewMockModerationNotifier(t)
	pub := mocks.NewMockModerationPublisher(t)
	svc := NewModerationService(repo, notifier, pub, newTestLogger(t))

	event := &domain.Event{ID: 5, Name: "Fun Run", Violated: true}
	repo.EXPECT().MarkViolated(mock.Anything, int64(5)).Return(event, nil)
	pub.EXPECT().PublishEventHidden(mock.Anything, event).Return(errors.New("redis down"))
	notifier.EXPECT().NotifyEventHidden(mock.Anything, event)

	// The hide already committed; fan-out failure must not surface.
	require.NoError(t, svc.Violate(context.Background(), 5))
}

func TestModerationService_Violate_NoNotifierNoPublisher(t *testing.T) {
	repo := mocks.NewMockModerationRepo(t)
	svc := NewModerationService(repo, nil, nil, newTestLogger(t))

	event := &domain.Event{ID: 5, Name: "Fun Run", Violated: true}
	repo.EXPECT().MarkViolated(mock.Anything, int64(5)).Return(event, nil)

	require.NoError(t, svc.Violate(context.Background(), 5))
}
