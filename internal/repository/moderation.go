package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/XXQ0321/charity-events/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ModerationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewModerationRepo(db *dbpg.DB) *ModerationRepository {
	return &ModerationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// MarkViolated hides an event from all public reads. The update is a single
// atomic statement; setting the flag on an already hidden event is a no-op
// success. The flag is never reset anywhere. domain.ErrEventNotFound means
// the id has no row at all, independent of the current flag state.
func (r *ModerationRepository) MarkViolated(ctx context.Context, id int64) (*domain.Event, error) {
	query := `UPDATE events
			  SET is_violated = TRUE
			  WHERE id = $1
			  RETURNING id, name, category, location, event_start_date, event_end_date, image_url`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("mark violated: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Name, &e.Category, &e.Location,
		&e.StartDate, &e.EndDate, &e.ImageURL,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan violated event: %w", err)
	}
	e.Violated = true

	return &e, nil
}
