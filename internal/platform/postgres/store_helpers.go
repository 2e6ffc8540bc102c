package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// componentLogger returns l (or the default logger) tagged with the component name.
func componentLogger(l *slog.Logger, component string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With(slog.String("component", component))
}

// runList executes the count and page queries of q. The page query is skipped
// when the page starts past the last matching row.
func runList[T any](ctx context.Context, db store.DBTX, q *listQuery, page store.Page) ([]T, int, error) {
	countSQL, countArgs := q.countSQL()
	var total int
	if err := sqlx.GetContext(ctx, db, &total, countSQL, countArgs...); err != nil {
		return nil, 0, store.NewStoreError(q.table, "list", "count failed", err)
	}

	items := make([]T, 0, page.Size)
	if page.Offset() >= total {
		return items, total, nil
	}

	selectSQL, args := q.selectSQL(page)
	if err := sqlx.SelectContext(ctx, db, &items, selectSQL, args...); err != nil {
		return nil, 0, store.NewStoreError(q.table, "list", "select failed", err)
	}
	return items, total, nil
}

// execAffecting runs an UPDATE or DELETE and maps zero affected rows to notFound.
func execAffecting(ctx context.Context, db store.DBTX, notFound error, query string, args ...any) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return MapError(err, notFound)
	}
	return CheckRowsAffected(result, notFound)
}

// selectIn runs a query with a single IN (?) clause over ids, expanded by sqlx.In
// and rebound to the driver's placeholder style.
func selectIn[T any](ctx context.Context, db store.DBTX, query string, ids []int64) ([]T, error) {
	items := []T{}
	if len(ids) == 0 {
		return items, nil
	}
	expanded, args, err := sqlx.In(query, ids)
	if err != nil {
		return nil, fmt.Errorf("expand IN clause: %w", err)
	}
	if err := sqlx.SelectContext(ctx, db, &items, db.Rebind(expanded), args...); err != nil {
		return nil, err
	}
	return items, nil
}
