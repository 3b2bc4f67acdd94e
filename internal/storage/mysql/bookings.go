package mysql

import (
	"context"
	"database/sql"
	"time"

	"hotelbook/internal/domain"
)

type BookingRepo struct{ db *sql.DB }

func NewBookings(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

type rowScanner interface{ Scan(dest ...any) error }

func scanBooking(row rowScanner) (domain.Booking, error) {
	var b domain.Booking
	var in, out time.Time
	var status string
	if err := row.Scan(&b.ID, &b.UserID, &b.RoomID, &in, &out, &b.TotalPrice, &status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}
	b.CheckInDate = in.Format(domain.DateLayout)
	b.CheckOutDate = out.Format(domain.DateLayout)
	b.Status = domain.BookingStatus(status)
	return b, nil
}

func getBooking(ctx context.Context, q querier, query string, id int64) (domain.Booking, error) {
	return scanBooking(q.QueryRowContext(ctx, query, id))
}

// Create holds the room and inserts the booking in one transaction. The
// hold is conditional on the availability flag, so a concurrent create
// against the same room loses cleanly with ErrRoomUnavailable.
func (r *BookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Booking{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, holdRoomSQL, b.RoomID)
	if err != nil {
		return domain.Booking{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Booking{}, domain.ErrRoomUnavailable
	}

	res, err = tx.ExecContext(ctx, insertBookingSQL,
		b.UserID, b.RoomID, b.CheckInDate, b.CheckOutDate, b.TotalPrice, string(b.Status))
	if err != nil {
		return domain.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Booking{}, err
	}

	created, err := getBooking(ctx, tx, getBookingSQL, id)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Booking{}, err
	}
	return created, nil
}

func (r *BookingRepo) GetByID(ctx context.Context, id int64) (domain.Booking, error) {
	return getBooking(ctx, r.db, getBookingSQL, id)
}

func (r *BookingRepo) GetAll(ctx context.Context) ([]domain.Booking, error) {
	return r.list(ctx, listBookingsSQL)
}

func (r *BookingRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return r.list(ctx, listBookingsByUserSQL, userID)
}

func (r *BookingRepo) ListByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	return r.list(ctx, listBookingsByRoomSQL, roomID)
}

func (r *BookingRepo) list(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Transition applies the status machine under a row lock so the room side
// effect and the status change land together or not at all.
func (r *BookingRepo) Transition(ctx context.Context, id int64, to domain.BookingStatus) (domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Booking{}, err
	}
	defer func() { _ = tx.Rollback() }()

	b, err := getBooking(ctx, tx, getBookingForUpdateSQL, id)
	if err != nil {
		return domain.Booking{}, err
	}
	effect, err := b.Status.Transition(to)
	if err != nil {
		return domain.Booking{}, err
	}

	switch effect {
	case domain.RoomRelease:
		if _, err := tx.ExecContext(ctx, releaseRoomSQL, b.RoomID); err != nil {
			return domain.Booking{}, err
		}
	case domain.RoomAcquire:
		res, err := tx.ExecContext(ctx, holdRoomSQL, b.RoomID)
		if err != nil {
			return domain.Booking{}, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.Booking{}, domain.ErrRoomUnavailable
		}
	}

	if _, err := tx.ExecContext(ctx, setBookingStatusSQL, string(to), id); err != nil {
		return domain.Booking{}, err
	}
	updated, err := getBooking(ctx, tx, getBookingSQL, id)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Booking{}, err
	}
	return updated, nil
}

// Delete removes the booking; a confirmed booking was holding its room, so
// the same transaction releases it.
func (r *BookingRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	b, err := getBooking(ctx, tx, getBookingForUpdateSQL, id)
	if err != nil {
		return err
	}
	if b.Status == domain.StatusConfirmed {
		if _, err := tx.ExecContext(ctx, releaseRoomSQL, b.RoomID); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, deleteBookingSQL, id); err != nil {
		return err
	}
	return tx.Commit()
}
