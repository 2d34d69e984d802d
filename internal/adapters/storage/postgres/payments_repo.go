package postgres

import (
	"context"
	"database/sql"
	"strings"

	"urbanizacion-api/internal/domain/payments"
)

type PaymentsRepo struct {
	db *sql.DB
}

func NewPaymentsRepo(db *sql.DB) *PaymentsRepo {
	return &PaymentsRepo{db: db}
}

func (r *PaymentsRepo) Create(ctx context.Context, p payments.Payment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (
			id, profile_id, amount, status, created_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		p.ID,
		p.ProfileID,
		p.Amount,
		string(p.Status),
		p.CreatedAt,
	)
	return err
}

func (r *PaymentsRepo) ListByProfile(ctx context.Context, profileID string, limit int) ([]payments.Payment, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, profile_id, amount, status, created_at
		FROM payments
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, profileID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func (r *PaymentsRepo) ListAll(ctx context.Context, limit int) ([]payments.Payment, error) {
	query := `
		SELECT id, profile_id, amount, status, created_at
		FROM payments
		ORDER BY created_at DESC
	`

	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+` LIMIT $1`, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func scanPayments(rows *sql.Rows) ([]payments.Payment, error) {
	out := make([]payments.Payment, 0)
	for rows.Next() {
		var p payments.Payment
		var status string
		if err := rows.Scan(
			&p.ID,
			&p.ProfileID,
			&p.Amount,
			&status,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.Status = payments.Status(status)
		out = append(out, p)
	}
	return out, rows.Err()
}
