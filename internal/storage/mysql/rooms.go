package mysql

import (
	"context"
	"database/sql"
	"strings"

	"hotelbook/internal/domain"
)

type RoomRepo struct{ db *sql.DB }

func NewRooms(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

func scanRoom(row *sql.Row) (domain.Room, error) {
	var rm domain.Room
	if err := row.Scan(&rm.ID, &rm.HotelID, &rm.RoomNumber, &rm.RoomType, &rm.PricePerNight, &rm.IsAvailable, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Room{}, domain.ErrNotFound
		}
		return domain.Room{}, err
	}
	return rm, nil
}

func collectRooms(rows *sql.Rows) ([]domain.Room, error) {
	defer rows.Close()
	var out []domain.Room
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.RoomNumber, &rm.RoomType, &rm.PricePerNight, &rm.IsAvailable, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *RoomRepo) Create(ctx context.Context, nr domain.NewRoom) (domain.Room, error) {
	avail := true
	if nr.IsAvailable != nil {
		avail = *nr.IsAvailable
	}
	res, err := r.db.ExecContext(ctx, insertRoomSQL, nr.HotelID, nr.RoomNumber, nr.RoomType, *nr.PricePerNight, avail)
	if err != nil {
		return domain.Room{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Room{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *RoomRepo) GetByID(ctx context.Context, id int64) (domain.Room, error) {
	return scanRoom(r.db.QueryRowContext(ctx, getRoomSQL, id))
}

func (r *RoomRepo) GetAll(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL)
	if err != nil {
		return nil, err
	}
	return collectRooms(rows)
}

func (r *RoomRepo) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsByHotelSQL, hotelID)
	if err != nil {
		return nil, err
	}
	return collectRooms(rows)
}

func (r *RoomRepo) ListAvailableByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listAvailableRoomsByHotelSQL, hotelID)
	if err != nil {
		return nil, err
	}
	return collectRooms(rows)
}

func (r *RoomRepo) Update(ctx context.Context, id int64, p domain.RoomPatch) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if p.Empty() {
		return nil
	}

	sets := make([]string, 0, 6)
	args := make([]any, 0, 6)
	if p.HotelID != nil {
		sets = append(sets, "hotel_id = ?")
		args = append(args, *p.HotelID)
	}
	if p.RoomNumber != nil {
		sets = append(sets, "room_number = ?")
		args = append(args, *p.RoomNumber)
	}
	if p.RoomType != nil {
		sets = append(sets, "room_type = ?")
		args = append(args, *p.RoomType)
	}
	if p.PricePerNight != nil {
		sets = append(sets, "price_per_night = ?")
		args = append(args, *p.PricePerNight)
	}
	if p.IsAvailable != nil {
		sets = append(sets, "is_available = ?")
		args = append(args, *p.IsAvailable)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	// existence already checked above; MySQL reports zero affected rows
	// for an identical-value update, so that is no signal here
	_, err := r.db.ExecContext(ctx, "UPDATE rooms SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

func (r *RoomRepo) SetAvailability(ctx context.Context, id int64, available bool) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, setRoomAvailabilitySQL, available, id)
	return err
}

func (r *RoomRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteRoomSQL, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
