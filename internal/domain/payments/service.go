package payments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
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

func ParseStatus(s string) (Status, error) {
	switch Status(strings.TrimSpace(s)) {
	case StatusPaid:
		return StatusPaid, nil
	case StatusPending, "":
		// sin estado explícito, un pago registrado arranca pendiente
		return StatusPending, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", ErrInvalidInput
	}
}

type CreateInput struct {
	ProfileID string
	Amount    float64
	Status    string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Payment, error) {
	profileID := strings.TrimSpace(in.ProfileID)
	if profileID == "" {
		return Payment{}, ErrInvalidInput
	}
	if in.Amount <= 0 {
		return Payment{}, ErrInvalidInput
	}

	status, err := ParseStatus(in.Status)
	if err != nil {
		return Payment{}, err
	}

	p := Payment{
		ID:        uuid.NewString(),
		ProfileID: profileID,
		Amount:    in.Amount,
		Status:    status,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Payment{}, err
	}
	return p, nil
}

func (s *Service) ListByProfile(ctx context.Context, profileID string, limit int) ([]Payment, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = 5
	}
	return s.repo.ListByProfile(ctx, profileID, limit)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]Payment, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ListAll(ctx, limit)
}

// Summarize calcula los totales del panel financiero: recaudado, pendiente
// y cantidad de pagos cobrados en el mes corriente.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	items, err := s.repo.ListAll(ctx, 0)
	if err != nil {
		return Summary{}, err
	}

	now := s.now()
	var sum Summary
	for _, p := range items {
		switch p.Status {
		case StatusPaid:
			sum.TotalCollected += p.Amount
			if p.CreatedAt.Year() == now.Year() && p.CreatedAt.Month() == now.Month() {
				sum.PaidThisMonth++
			}
		case StatusPending:
			sum.TotalPending += p.Amount
		}
	}
	return sum, nil
}
