package bookings

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

var allowedAreas = map[string]struct{}{
	AreaBBQ:       {},
	AreaEventHall: {},
	AreaPool:      {},
	AreaTennis:    {},
}

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

type CreateInput struct {
	ProfileID      string
	UrbanizacionID string
	AreaName       string
	StartTime      time.Time
	EndTime        time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Booking, error) {
	profileID := strings.TrimSpace(in.ProfileID)
	area := strings.TrimSpace(in.AreaName)

	if profileID == "" || area == "" {
		return Booking{}, ErrInvalidInput
	}
	if _, ok := allowedAreas[area]; !ok {
		return Booking{}, ErrInvalidInput
	}
	if in.StartTime.IsZero() || in.EndTime.IsZero() {
		return Booking{}, ErrInvalidInput
	}
	if !in.EndTime.After(in.StartTime) {
		return Booking{}, ErrInvalidInput
	}

	// TODO: rechazar reservas solapadas por área (el calendario hoy las
	// muestra igual, así que el choque se resuelve a mano).

	b := Booking{
		ID:             uuid.NewString(),
		ProfileID:      profileID,
		UrbanizacionID: strings.TrimSpace(in.UrbanizacionID),
		AreaName:       area,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		Status:         StatusConfirmed,
		CreatedAt:      s.now(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return Booking{}, err
	}
	return b, nil
}

// ListMonth devuelve las reservas cuyo inicio cae dentro del mes indicado
// (month en 1..12, igual que time.Month).
func (s *Service) ListMonth(ctx context.Context, year int, month time.Month) ([]Booking, error) {
	if year < 2000 || month < time.January || month > time.December {
		return nil, ErrInvalidInput
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Second)

	return s.repo.ListByRange(ctx, from, to)
}

// Cancel marca una reserva como cancelada. Solo el dueño de la reserva
// puede cancelarla; la operación es idempotente.
func (s *Service) Cancel(ctx context.Context, bookingID, profileID string) (Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	profileID = strings.TrimSpace(profileID)
	if bookingID == "" || profileID == "" {
		return Booking{}, ErrInvalidInput
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return Booking{}, ErrNotFound
	}
	if b.ProfileID != profileID {
		return Booking{}, ErrForbidden
	}
	if b.Status == StatusCancelled {
		return b, nil
	}

	b.Status = StatusCancelled
	if err := s.repo.Update(ctx, b); err != nil {
		return Booking{}, err
	}
	return b, nil
}
