package profiles

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUnknownRole  = errors.New("unknown role")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// ParseRole valida un rol contra el conjunto cerrado.
// Un rol desconocido es un error explícito: el sistema original lo degradaba
// en silencio a "resident", lo que escondía perfiles mal cargados.
func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(s)) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleResident:
		return RoleResident, nil
	case RoleGuard:
		return RoleGuard, nil
	default:
		return "", ErrUnknownRole
	}
}

// DashboardPath devuelve la ruta del panel según el rol.
func DashboardPath(r Role) string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleGuard:
		return "/guard/scan"
	default:
		return "/resident"
	}
}

type CreateInput struct {
	ID             string
	FullName       string
	Role           string
	HouseNumber    string
	UrbanizacionID string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Profile, error) {
	id := strings.TrimSpace(in.ID)
	name := strings.TrimSpace(in.FullName)
	if id == "" || name == "" {
		return Profile{}, ErrInvalidInput
	}

	role, err := ParseRole(in.Role)
	if err != nil {
		return Profile{}, err
	}

	p := Profile{
		ID:             id,
		FullName:       name,
		Role:           role,
		HouseNumber:    strings.TrimSpace(in.HouseNumber),
		UrbanizacionID: strings.TrimSpace(in.UrbanizacionID),
		CreatedAt:      s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, ErrInvalidInput
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

// RoleOf expone solo el rol de un perfil. Lo usan otros módulos para
// autorización sin acoplar el perfil completo.
func (s *Service) RoleOf(ctx context.Context, userID string) (Role, error) {
	p, err := s.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return p.Role, nil
}
