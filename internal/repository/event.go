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

const eventColumns = `e.id, e.name, e.category, e.location,
			   e.event_start_date, e.event_end_date, e.image_url,
			   ed.event_id, ed.description, ed.purpose, ed.ticket_price,
			   ed.goal_amount, ed.current_amount, ed.registration_form`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
	now      func() time.Time
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		now: time.Now,
	}
}

// List returns the visible events matching the filter, joined with their
// detail rows, ordered by start date with id as the tiebreak. Each row is
// labelled via domain.Classify; a status filter is tested against that same
// label, so labelling and filtering can never disagree.
func (r *EventRepository) List(ctx context.Context, f domain.EventFilter) ([]*domain.AnnotatedEvent, error) {
	where, args := whereClause(buildPredicates(f))
	query := fmt.Sprintf(`SELECT %s
			  FROM events e
			  LEFT JOIN event_details ed ON ed.event_id = e.id
			  WHERE %s
			  ORDER BY e.event_start_date ASC, e.id ASC`, eventColumns, where)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	today := r.now()
	var res []*domain.AnnotatedEvent
	for rows.Next() {
		e, err := scanAnnotatedEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if annotate(e, f.Status, today) {
			res = append(res, e)
		}
	}

	return res, rows.Err()
}

// GetByID looks up one visible event with its detail. A missing id and a
// hidden event both come back as domain.ErrEventNotFound.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.AnnotatedEvent, error) {
	where, args := whereClause(append(buildPredicates(domain.EventFilter{}), hasID{id: id}))
	query := fmt.Sprintf(`SELECT %s
			  FROM events e
			  LEFT JOIN event_details ed ON ed.event_id = e.id
			  WHERE %s`, eventColumns, where)

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanAnnotatedEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	e.Status = domain.Classify(e.StartDate, e.EndDate, r.now())

	return e, nil
}

// Categories returns the distinct categories across visible events in
// ascending lexicographic order.
func (r *EventRepository) Categories(ctx context.Context) ([]string, error) {
	where, args := whereClause(buildPredicates(domain.EventFilter{}))
	query := fmt.Sprintf(`SELECT DISTINCT e.category
			  FROM events e
			  WHERE %s
			  ORDER BY e.category ASC`, where)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var c string
		if err = rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

// annotate labels the event via domain.Classify and reports whether it
// survives the status filter. The filter is tested against the label just
// computed, never against a separately derived status.
func annotate(e *domain.AnnotatedEvent, status domain.Status, today time.Time) bool {
	e.Status = domain.Classify(e.StartDate, e.EndDate, today)
	return status == "" || e.Status == status
}

func scanAnnotatedEvent(row scanner) (*domain.AnnotatedEvent, error) {
	var (
		e        domain.AnnotatedEvent
		detailID sql.NullInt64
		desc     sql.NullString
		purpose  sql.NullString
		price    sql.NullFloat64
		goal     sql.NullFloat64
		current  sql.NullFloat64
		regForm  sql.NullString
	)

	if err := row.Scan(
		&e.ID, &e.Name, &e.Category, &e.Location,
		&e.StartDate, &e.EndDate, &e.ImageURL,
		&detailID, &desc, &purpose, &price, &goal, &current, &regForm,
	); err != nil {
		return nil, err
	}

	if detailID.Valid {
		d := &domain.EventDetail{
			Description:      desc.String,
			Purpose:          purpose.String,
			TicketPrice:      price.Float64,
			RegistrationForm: regForm.String,
		}
		if goal.Valid {
			d.GoalAmount = &goal.Float64
		}
		if current.Valid {
			d.CurrentAmount = &current.Float64
		}
		e.Detail = d
	}

	return &e, nil
}
