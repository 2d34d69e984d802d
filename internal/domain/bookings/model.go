package bookings

import "time"

// Áreas comunales reservables de la urbanización.
const (
	AreaBBQ       = "BBQ Area"
	AreaEventHall = "Salón de Eventos"
	AreaPool      = "Piscina"
	AreaTennis    = "Cancha de Tenis"
)

// Status de una reserva.
// @Enum confirmed, cancelled
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Booking struct {
	ID        string
	ProfileID string

	UrbanizacionID string
	AreaName       string

	StartTime time.Time
	EndTime   time.Time
	Status    Status

	CreatedAt time.Time
}
