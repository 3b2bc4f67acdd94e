package mysql

import (
	"context"
	"database/sql"
	"strings"

	"hotelbook/internal/domain"
)

type HotelRepo struct{ db *sql.DB }

func NewHotels(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

func scanHotel(row *sql.Row) (domain.Hotel, error) {
	var h domain.Hotel
	var rating sql.NullInt64
	if err := row.Scan(&h.ID, &h.Name, &h.Address, &h.City, &h.Country, &rating, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, err
	}
	if rating.Valid {
		r := int(rating.Int64)
		h.Rating = &r
	}
	return h, nil
}

func (r *HotelRepo) Create(ctx context.Context, h domain.NewHotel) (domain.Hotel, error) {
	res, err := r.db.ExecContext(ctx, insertHotelSQL, h.Name, h.Address, h.City, h.Country, valInt(h.Rating))
	if err != nil {
		return domain.Hotel{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Hotel{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *HotelRepo) GetByID(ctx context.Context, id int64) (domain.Hotel, error) {
	return scanHotel(r.db.QueryRowContext(ctx, getHotelSQL, id))
}

func (r *HotelRepo) GetAll(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		var rating sql.NullInt64
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.City, &h.Country, &rating, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		if rating.Valid {
			rt := int(rating.Int64)
			h.Rating = &rt
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *HotelRepo) Update(ctx context.Context, id int64, p domain.HotelPatch) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if p.Empty() {
		// nothing supplied: trivial success, no write
		return nil
	}

	sets := make([]string, 0, 6)
	args := make([]any, 0, 6)
	if p.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *p.Name)
	}
	if p.Address != nil {
		sets = append(sets, "address = ?")
		args = append(args, *p.Address)
	}
	if p.City != nil {
		sets = append(sets, "city = ?")
		args = append(args, *p.City)
	}
	if p.Country != nil {
		sets = append(sets, "country = ?")
		args = append(args, *p.Country)
	}
	if p.Rating != nil {
		sets = append(sets, "rating = ?")
		args = append(args, *p.Rating)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	// existence already checked above; MySQL reports zero affected rows
	// for an identical-value update, so that is no signal here
	_, err := r.db.ExecContext(ctx, "UPDATE hotels SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

func (r *HotelRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteHotelSQL, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
