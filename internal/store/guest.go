package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cordial-dev/cordial/internal/models"
	srvErrors "github.com/cordial-dev/cordial/pkg/errors"
)

var _ Crud[models.Guest] = (*GuestStore)(nil)

// GuestStore persists guests in the guests table.
type GuestStore struct {
	pool    *Pool
	builder sq.StatementBuilderType
}

func NewGuestStore(pool *Pool) *GuestStore {
	return &GuestStore{
		pool:    pool,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Get returns the guest with the given id.
func (s *GuestStore) Get(ctx context.Context, id uuid.UUID) (models.Guest, error) {
	query, args, err := s.builder.
		Select(guestColumns...).
		From(guestsTable).
		Where(byID(id)).
		ToSql()
	if err != nil {
		return models.Guest{}, srvErrors.NewStoreError("build select guest", err)
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return models.Guest{}, err
	}
	defer conn.Close()

	rows, err := NewQueryInterceptor(conn).QueryContext(ctx, query, args...)
	if err != nil {
		return models.Guest{}, srvErrors.NewStoreError("select guest", err)
	}
	defer rows.Close()

	guests, err := scanGuests(rows)
	if err != nil {
		return models.Guest{}, srvErrors.NewStoreError("select guest", err)
	}

	switch len(guests) {
	case 0:
		return models.Guest{}, srvErrors.NewResourceNotFoundError("guest", id.String())
	case 1:
		return guests[0], nil
	default:
		return models.Guest{}, srvErrors.NewStoreError(
			"select guest",
			fmt.Errorf("expected one row for id %s, found %d", id, len(guests)),
		)
	}
}

// GetAll returns every guest in insertion order.
func (s *GuestStore) GetAll(ctx context.Context) ([]models.Guest, error) {
	query, args, err := s.builder.
		Select(guestColumns...).
		From(guestsTable).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, srvErrors.NewStoreError("build select guests", err)
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := NewQueryInterceptor(conn).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, srvErrors.NewStoreError("select guests", err)
	}
	defer rows.Close()

	guests, err := scanGuests(rows)
	if err != nil {
		return nil, srvErrors.NewStoreError("select guests", err)
	}
	return guests, nil
}

// Create inserts guest and returns the row as the database stored it.
func (s *GuestStore) Create(ctx context.Context, guest models.Guest) (models.Guest, error) {
	query, args, err := s.builder.
		Insert(guestsTable).
		Columns("id", "name", "hash").
		Values(sq.Expr("CAST(? AS UUID)", guest.ID.String()), guest.Name, guest.Hash).
		Suffix("RETURNING " + returningColumns()).
		ToSql()
	if err != nil {
		return models.Guest{}, srvErrors.NewStoreError("build insert guest", err)
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return models.Guest{}, err
	}
	defer conn.Close()

	var created models.Guest
	err = NewQueryInterceptor(conn).
		QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Name, &created.Hash)
	if err != nil {
		return models.Guest{}, srvErrors.NewStoreError("insert guest", err)
	}
	return created, nil
}

// Update overwrites name and hash of the row matching guest.ID. The guest is
// returned as given; the row is not re-read.
func (s *GuestStore) Update(ctx context.Context, guest models.Guest) (models.Guest, error) {
	query, args, err := s.builder.
		Update(guestsTable).
		Set("name", guest.Name).
		Set("hash", guest.Hash).
		Where(byID(guest.ID)).
		ToSql()
	if err != nil {
		return models.Guest{}, srvErrors.NewStoreError("build update guest", err)
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return models.Guest{}, err
	}
	defer conn.Close()

	res, err := NewQueryInterceptor(conn).ExecContext(ctx, query, args...)
	if err != nil {
		return models.Guest{}, srvErrors.NewStoreError("update guest", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		zap.S().Named("guest_store").Debugw("update matched no rows", "id", guest.ID)
	}
	return guest, nil
}

// Delete removes the row matching guest.ID. Deleting a missing guest succeeds.
func (s *GuestStore) Delete(ctx context.Context, guest models.Guest) error {
	query, args, err := s.builder.
		Delete(guestsTable).
		Where(byID(guest.ID)).
		ToSql()
	if err != nil {
		return srvErrors.NewStoreError("build delete guest", err)
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := NewQueryInterceptor(conn).ExecContext(ctx, query, args...); err != nil {
		return srvErrors.NewStoreError("delete guest", err)
	}
	return nil
}

// Count returns the number of stored guests.
func (s *GuestStore) Count(ctx context.Context) (int, error) {
	query, args, err := s.builder.Select("COUNT(*)").From(guestsTable).ToSql()
	if err != nil {
		return 0, srvErrors.NewStoreError("build count guests", err)
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	var count int
	if err := NewQueryInterceptor(conn).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, srvErrors.NewStoreError("count guests", err)
	}
	return count, nil
}

func byID(id uuid.UUID) sq.Sqlizer {
	return sq.Expr("id = CAST(? AS UUID)", id.String())
}

func returningColumns() string {
	cols := guestColumns[0]
	for _, c := range guestColumns[1:] {
		cols += ", " + c
	}
	return cols
}

func scanGuests(rows *sql.Rows) ([]models.Guest, error) {
	guests := []models.Guest{}
	for rows.Next() {
		var g models.Guest
		if err := rows.Scan(&g.ID, &g.Name, &g.Hash); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}
