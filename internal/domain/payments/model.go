package payments

import "time"

// Status define los estados de un pago de alícuota.
// @Enum paid, pending, rejected
type Status string

const (
	StatusPaid     Status = "paid"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

type Payment struct {
	ID        string
	ProfileID string

	Amount float64
	Status Status

	CreatedAt time.Time
}

// Summary alimenta el panel financiero del admin.
type Summary struct {
	TotalCollected float64 // suma de pagos en estado paid
	TotalPending   float64 // suma de pagos en estado pending
	PaidThisMonth  int     // cantidad de pagos paid del mes corriente
}
