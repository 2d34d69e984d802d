package postgres

import (
	"context"
	"database/sql"
	"strings"

	"urbanizacion-api/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (r *ProfilesRepo) Create(ctx context.Context, p profiles.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (
			id, full_name, role, house_number, urbanizacion_id, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		p.ID,
		p.FullName,
		string(p.Role),
		p.HouseNumber,
		p.UrbanizacionID,
		p.CreatedAt,
	)
	return err
}

func (r *ProfilesRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return profiles.Profile{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, role, house_number, urbanizacion_id, created_at
		FROM profiles
		WHERE id = $1
	`, id)

	var p profiles.Profile
	var role string
	if err := row.Scan(
		&p.ID,
		&p.FullName,
		&role,
		&p.HouseNumber,
		&p.UrbanizacionID,
		&p.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return profiles.Profile{}, ErrNotFound
		}
		return profiles.Profile{}, err
	}

	p.Role = profiles.Role(role)
	return p, nil
}
