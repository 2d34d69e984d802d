package bookings

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, b Booking) error
	GetByID(ctx context.Context, id string) (Booking, error)
	Update(ctx context.Context, b Booking) error
	// ListByRange devuelve reservas cuyo inicio cae en [from, to],
	// ordenadas por inicio ascendente.
	ListByRange(ctx context.Context, from, to time.Time) ([]Booking, error)
}
