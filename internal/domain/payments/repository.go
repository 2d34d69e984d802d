package payments

import "context"

type Repository interface {
	Create(ctx context.Context, p Payment) error
	ListByProfile(ctx context.Context, profileID string, limit int) ([]Payment, error)
	// ListAll devuelve pagos ordenados del más reciente al más viejo.
	// limit <= 0 significa sin límite (lo usa el cálculo del resumen).
	ListAll(ctx context.Context, limit int) ([]Payment, error)
}
