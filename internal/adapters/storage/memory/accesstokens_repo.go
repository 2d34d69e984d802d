package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"urbanizacion-api/internal/domain/accesstokens"
)

var (
	ErrNotFound = errors.New("not found")
)

type tokenRepo struct {
	mu     sync.Mutex
	byCode map[string]accesstokens.Token
}

func NewAccessTokensRepo() accesstokens.Repository {
	return &tokenRepo{
		byCode: make(map[string]accesstokens.Token),
	}
}

func (r *tokenRepo) Create(ctx context.Context, t accesstokens.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.Code == "" {
		return errors.New("token code required")
	}
	if _, exists := r.byCode[t.Code]; exists {
		return errors.New("token code already exists")
	}
	r.byCode[t.Code] = t
	return nil
}

func (r *tokenRepo) GetByCode(ctx context.Context, code string) (accesstokens.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byCode[code]
	if !ok {
		return accesstokens.Token{}, accesstokens.ErrTokenNotFound
	}
	return t, nil
}

// Consume hace el compare-and-set bajo el mismo lock que protege el mapa:
// chequear used y flipearlo es una sola sección crítica, nunca dos pasos.
func (r *tokenRepo) Consume(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byCode[code]
	if !ok {
		return accesstokens.ErrTokenNotFound
	}
	if t.Used {
		return accesstokens.ErrAlreadyConsumed
	}
	t.Used = true
	r.byCode[code] = t
	return nil
}

func (r *tokenRepo) ListByOwner(ctx context.Context, ownerID string, limit int) ([]accesstokens.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]accesstokens.Token, 0)
	for _, t := range r.byCode {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
