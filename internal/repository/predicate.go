package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/XXQ0321/charity-events/internal/domain"
)

// predicate is one constraint on the events table. Each concrete variant
// renders itself to SQL with positional placeholders; whereClause is the only
// place the variants are composed, so clause order and placeholder numbering
// cannot drift apart.
type predicate interface {
	sql(argPos int) (clause string, args []any)
}

type notViolated struct{}

func (notViolated) sql(int) (string, []any) {
	return "NOT e.is_violated", nil
}

type hasID struct{ id int64 }

func (p hasID) sql(n int) (string, []any) {
	return fmt.Sprintf("e.id = $%d", n), []any{p.id}
}

type equalsCategory struct{ category string }

func (p equalsCategory) sql(n int) (string, []any) {
	return fmt.Sprintf("e.category = $%d", n), []any{p.category}
}

type containsLocation struct{ fragment string }

func (p containsLocation) sql(n int) (string, []any) {
	return fmt.Sprintf("e.location ILIKE $%d", n), []any{"%" + p.fragment + "%"}
}

type startsOnOrAfter struct{ date time.Time }

func (p startsOnOrAfter) sql(n int) (string, []any) {
	return fmt.Sprintf("e.event_start_date >= $%d", n), []any{p.date}
}

type endsOnOrBefore struct{ date time.Time }

func (p endsOnOrBefore) sql(n int) (string, []any) {
	return fmt.Sprintf("e.event_end_date <= $%d", n), []any{p.date}
}

// buildPredicates normalizes a filter into the predicate list. The moderation
// exclusion comes first and is appended unconditionally; no filter input can
// override it. The status filter is absent here: it is applied on scanned
// rows via domain.Classify, the same call that labels them.
func buildPredicates(f domain.EventFilter) []predicate {
	ps := []predicate{notViolated{}}

	if f.Category != "" {
		ps = append(ps, equalsCategory{category: f.Category})
	}
	if f.Location != "" {
		ps = append(ps, containsLocation{fragment: f.Location})
	}
	if f.DateFrom != nil {
		ps = append(ps, startsOnOrAfter{date: *f.DateFrom})
	}
	if f.DateTo != nil {
		ps = append(ps, endsOnOrBefore{date: *f.DateTo})
	}

	return ps
}

// whereClause renders the AND-composition of the predicates, numbering
// placeholders from $1.
func whereClause(ps []predicate) (string, []any) {
	clauses := make([]string, 0, len(ps))
	var args []any

	for _, p := range ps {
		clause, a := p.sql(len(args) + 1)
		clauses = append(clauses, clause)
		args = append(args, a...)
	}

	return strings.Join(clauses, " AND "), args
}
