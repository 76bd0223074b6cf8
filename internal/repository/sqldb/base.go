package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/clinic-desk/internal/model"
	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
	"github.com/jwalitptl/clinic-desk/pkg/metrics"
)

// baseRepository provides common functionality for all repositories
type baseRepository struct {
	db      *sqlx.DB
	dialect dialect
	metrics *metrics.Metrics
	now     func() time.Time
}

func newBaseRepository(db *sqlx.DB, m *metrics.Metrics) baseRepository {
	return baseRepository{
		db:      db,
		dialect: dialectFor(db.DriverName()),
		metrics: m,
		now:     time.Now,
	}
}

func (r *baseRepository) timestamp() string {
	return r.now().Format(model.TimestampLayout)
}

// insert runs an INSERT ... RETURNING id and yields the assigned id.
func (r *baseRepository) insert(ctx context.Context, op, query string, args ...interface{}) (id int64, err error) {
	defer r.observe(op, time.Now(), &err)

	if err = r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&id); err != nil {
		return 0, apperrors.Storage(op, err)
	}
	return id, nil
}

// get loads a single row into dest, mapping no rows to NotFound.
func (r *baseRepository) get(ctx context.Context, op, resource string, dest interface{}, query string, args ...interface{}) (err error) {
	defer r.observe(op, time.Now(), &err)

	err = r.db.GetContext(ctx, dest, r.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(resource, err)
	}
	if err != nil {
		return apperrors.Storage(op, err)
	}
	return nil
}

func (r *baseRepository) selectRows(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) (err error) {
	defer r.observe(op, time.Now(), &err)

	if err = r.db.SelectContext(ctx, dest, r.db.Rebind(query), args...); err != nil {
		return apperrors.Storage(op, err)
	}
	return nil
}

// execOne runs a statement that must touch exactly one row.
func (r *baseRepository) execOne(ctx context.Context, op, resource, query string, args ...interface{}) (err error) {
	defer r.observe(op, time.Now(), &err)

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return apperrors.Storage(op, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage(op, err)
	}
	if rows == 0 {
		return apperrors.NotFound(resource, nil)
	}
	return nil
}

func (r *baseRepository) observe(op string, start time.Time, err *error) {
	var failed error
	if *err != nil && !apperrors.Is(*err, apperrors.ErrNotFound) {
		failed = *err
	}
	r.metrics.ObserveDB(op, start, failed)
}
