package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"urbanizacion-api/internal/domain/bookings"
)

type BookingsRepo struct {
	db *sql.DB
}

func NewBookingsRepo(db *sql.DB) *BookingsRepo {
	return &BookingsRepo{db: db}
}

func (r *BookingsRepo) Create(ctx context.Context, b bookings.Booking) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bookings (
			id, profile_id, urbanizacion_id, area_name,
			start_time, end_time, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		b.ID,
		b.ProfileID,
		b.UrbanizacionID,
		b.AreaName,
		b.StartTime,
		b.EndTime,
		string(b.Status),
		b.CreatedAt,
	)
	return err
}

func (r *BookingsRepo) GetByID(ctx context.Context, id string) (bookings.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return bookings.Booking{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, profile_id, urbanizacion_id, area_name,
		       start_time, end_time, status, created_at
		FROM bookings
		WHERE id = $1
	`, id)

	b, err := scanBooking(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return bookings.Booking{}, ErrNotFound
		}
		return bookings.Booking{}, err
	}
	return b, nil
}

func (r *BookingsRepo) Update(ctx context.Context, b bookings.Booking) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings
		SET area_name = $2,
		    start_time = $3,
		    end_time = $4,
		    status = $5
		WHERE id = $1
	`,
		b.ID,
		b.AreaName,
		b.StartTime,
		b.EndTime,
		string(b.Status),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingsRepo) ListByRange(ctx context.Context, from, to time.Time) ([]bookings.Booking, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, profile_id, urbanizacion_id, area_name,
		       start_time, end_time, status, created_at
		FROM bookings
		WHERE start_time >= $1
		  AND start_time <= $2
		ORDER BY start_time ASC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]bookings.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (bookings.Booking, error) {
	var b bookings.Booking
	var status string
	if err := row.Scan(
		&b.ID,
		&b.ProfileID,
		&b.UrbanizacionID,
		&b.AreaName,
		&b.StartTime,
		&b.EndTime,
		&status,
		&b.CreatedAt,
	); err != nil {
		return bookings.Booking{}, err
	}
	b.Status = bookings.Status(status)
	return b, nil
}
