package postgres

import (
	"context"
	"database/sql"
	"strings"

	"urbanizacion-api/internal/domain/accesstokens"
)

type AccessTokensRepo struct {
	db *sql.DB
}

func NewAccessTokensRepo(db *sql.DB) *AccessTokensRepo {
	return &AccessTokensRepo{db: db}
}

func (r *AccessTokensRepo) Create(ctx context.Context, t accesstokens.Token) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO access_tokens (
			id, token_code, profile_id, visitor_name,
			valid_until, is_used, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		t.ID,
		t.Code,
		t.OwnerID,
		t.VisitorName,
		t.ValidUntil,
		t.Used,
		t.CreatedAt,
	)
	return err
}

func (r *AccessTokensRepo) GetByCode(ctx context.Context, code string) (accesstokens.Token, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return accesstokens.Token{}, accesstokens.ErrTokenNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, token_code, profile_id, visitor_name,
			valid_until, is_used, created_at
		FROM access_tokens
		WHERE token_code = $1
	`, code)

	var t accesstokens.Token
	if err := row.Scan(
		&t.ID,
		&t.Code,
		&t.OwnerID,
		&t.VisitorName,
		&t.ValidUntil,
		&t.Used,
		&t.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return accesstokens.Token{}, accesstokens.ErrTokenNotFound
		}
		return accesstokens.Token{}, err
	}

	return t, nil
}

// Consume es un UPDATE condicional: el WHERE exige is_used = FALSE, así que
// dos verificaciones concurrentes del mismo código nunca consumen dos veces.
// Cero filas afectadas significa que otro request ya lo marcó.
func (r *AccessTokensRepo) Consume(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return accesstokens.ErrTokenNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE access_tokens
		SET is_used = TRUE
		WHERE token_code = $1
		  AND is_used = FALSE
	`, code)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// distinguimos inexistente de ya-usado con una lectura aparte;
		// el resultado de autorización no depende de esta distinción
		var exists bool
		if err := r.db.QueryRowContext(ctx, `
			SELECT EXISTS (SELECT 1 FROM access_tokens WHERE token_code = $1)
		`, code).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return accesstokens.ErrTokenNotFound
		}
		return accesstokens.ErrAlreadyConsumed
	}

	return nil
}

func (r *AccessTokensRepo) ListByOwner(ctx context.Context, ownerID string, limit int) ([]accesstokens.Token, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, token_code, profile_id, visitor_name,
			valid_until, is_used, created_at
		FROM access_tokens
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, ownerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]accesstokens.Token, 0)
	for rows.Next() {
		var t accesstokens.Token
		if err := rows.Scan(
			&t.ID,
			&t.Code,
			&t.OwnerID,
			&t.VisitorName,
			&t.ValidUntil,
			&t.Used,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, rows.Err()
}
