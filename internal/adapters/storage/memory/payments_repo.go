package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"urbanizacion-api/internal/domain/payments"
)

type paymentRepo struct {
	mu   sync.RWMutex
	byID map[string]payments.Payment
}

func NewPaymentsRepo() payments.Repository {
	return &paymentRepo{
		byID: make(map[string]payments.Payment),
	}
}

func (r *paymentRepo) Create(ctx context.Context, p payments.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		return errors.New("payment id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("payment already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *paymentRepo) ListByProfile(ctx context.Context, profileID string, limit int) ([]payments.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]payments.Payment, 0)
	for _, p := range r.byID {
		if p.ProfileID == profileID {
			out = append(out, p)
		}
	}
	sortNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *paymentRepo) ListAll(ctx context.Context, limit int) ([]payments.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]payments.Payment, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sortNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortNewestFirst(items []payments.Payment) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
