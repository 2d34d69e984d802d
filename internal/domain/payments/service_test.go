package payments

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Payment
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Payment{}}
}

func (r *testRepo) Create(ctx context.Context, p Payment) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) ListByProfile(ctx context.Context, profileID string, limit int) ([]Payment, error) {
	out := make([]Payment, 0)
	for _, p := range r.byID {
		if p.ProfileID == profileID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *testRepo) ListAll(ctx context.Context, limit int) ([]Payment, error) {
	out := make([]Payment, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func seed(t *testing.T, svc *Service, profileID string, amount float64, status string, at time.Time) {
	t.Helper()
	svc.now = func() time.Time { return at }
	if _, err := svc.Create(context.Background(), CreateInput{
		ProfileID: profileID,
		Amount:    amount,
		Status:    status,
	}); err != nil {
		t.Fatalf("seed payment error: %v", err)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []CreateInput{
		{ProfileID: "", Amount: 10, Status: "paid"},
		{ProfileID: "res-1", Amount: 0, Status: "paid"},
		{ProfileID: "res-1", Amount: -5, Status: "paid"},
		{ProfileID: "res-1", Amount: 10, Status: "voided"},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestService_Create_DefaultsToPending(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), CreateInput{ProfileID: "res-1", Amount: 50})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.Status != StatusPending {
		t.Fatalf("expected pending default, got %s", p.Status)
	}
}

func TestService_Summarize(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	lastMonth := now.AddDate(0, -1, 0)

	seed(t, svc, "res-1", 100, "paid", now)
	seed(t, svc, "res-2", 40, "paid", now.Add(-time.Hour))
	seed(t, svc, "res-3", 70, "paid", lastMonth)
	seed(t, svc, "res-1", 25, "pending", now)
	seed(t, svc, "res-2", 30, "pending", lastMonth)
	seed(t, svc, "res-3", 999, "rejected", now)

	svc.now = func() time.Time { return now }
	sum, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}

	if sum.TotalCollected != 210 {
		t.Fatalf("expected total collected 210, got %v", sum.TotalCollected)
	}
	if sum.TotalPending != 55 {
		t.Fatalf("expected total pending 55, got %v", sum.TotalPending)
	}
	if sum.PaidThisMonth != 2 {
		t.Fatalf("expected 2 payments this month, got %d", sum.PaidThisMonth)
	}
}

func TestService_ListByProfile_NewestFirst(t *testing.T) {
	svc := NewService(newTestRepo())

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		seed(t, svc, "res-1", 10, "paid", base.Add(time.Duration(i)*time.Hour))
	}
	seed(t, svc, "res-2", 10, "paid", base)

	items, err := svc.ListByProfile(context.Background(), "res-1", 5)
	if err != nil {
		t.Fatalf("ListByProfile error: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].CreatedAt.After(items[i-1].CreatedAt) {
			t.Fatalf("expected newest-first ordering")
		}
	}
}
