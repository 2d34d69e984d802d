package bookings

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Booking
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Booking{}}
}

func (r *testRepo) Create(ctx context.Context, b Booking) error {
	if b.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[b.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[b.ID] = b
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return Booking{}, errors.New("repo: not found")
	}
	return b, nil
}

func (r *testRepo) Update(ctx context.Context, b Booking) error {
	if _, ok := r.byID[b.ID]; !ok {
		return errors.New("repo: not found")
	}
	r.byID[b.ID] = b
	return nil
}

func (r *testRepo) ListByRange(ctx context.Context, from, to time.Time) ([]Booking, error) {
	out := make([]Booking, 0)
	for _, b := range r.byID {
		if b.StartTime.Before(from) || b.StartTime.After(to) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func mkBooking(t *testing.T, svc *Service, profileID, area string, start time.Time, dur time.Duration) Booking {
	t.Helper()
	b, err := svc.Create(context.Background(), CreateInput{
		ProfileID: profileID,
		AreaName:  area,
		StartTime: start,
		EndTime:   start.Add(dur),
	})
	if err != nil {
		t.Fatalf("Create booking error: %v", err)
	}
	return b
}

func TestService_Create_Defaults(t *testing.T) {
	svc := NewService(newTestRepo())

	start := time.Date(2026, 4, 4, 15, 0, 0, 0, time.UTC)
	b := mkBooking(t, svc, "res-1", AreaBBQ, start, 2*time.Hour)

	if b.Status != StatusConfirmed {
		t.Fatalf("expected confirmed status, got %s", b.Status)
	}
	if b.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	start := time.Date(2026, 4, 4, 15, 0, 0, 0, time.UTC)

	cases := []CreateInput{
		{ProfileID: "", AreaName: AreaBBQ, StartTime: start, EndTime: start.Add(time.Hour)},
		{ProfileID: "res-1", AreaName: "", StartTime: start, EndTime: start.Add(time.Hour)},
		{ProfileID: "res-1", AreaName: "Helipuerto", StartTime: start, EndTime: start.Add(time.Hour)},
		{ProfileID: "res-1", AreaName: AreaBBQ, EndTime: start.Add(time.Hour)},
		{ProfileID: "res-1", AreaName: AreaBBQ, StartTime: start},
		{ProfileID: "res-1", AreaName: AreaBBQ, StartTime: start, EndTime: start},
		{ProfileID: "res-1", AreaName: AreaBBQ, StartTime: start, EndTime: start.Add(-time.Hour)},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestService_ListMonth_FiltersByStart(t *testing.T) {
	svc := NewService(newTestRepo())

	march := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	lastOfMarch := time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC)

	mkBooking(t, svc, "res-1", AreaBBQ, march, time.Hour)
	mkBooking(t, svc, "res-1", AreaPool, lastOfMarch, 30*time.Minute)
	mkBooking(t, svc, "res-2", AreaTennis, april, time.Hour)

	items, err := svc.ListMonth(context.Background(), 2026, time.March)
	if err != nil {
		t.Fatalf("ListMonth error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 bookings in march, got %d", len(items))
	}
	if !items[0].StartTime.Before(items[1].StartTime) {
		t.Fatalf("expected ascending order by start time")
	}
}

func TestService_Cancel_OwnerOnly_Idempotent(t *testing.T) {
	svc := NewService(newTestRepo())

	start := time.Date(2026, 4, 4, 15, 0, 0, 0, time.UTC)
	b := mkBooking(t, svc, "res-1", AreaEventHall, start, 3*time.Hour)

	if _, err := svc.Cancel(context.Background(), b.ID, "res-2"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	c, err := svc.Cancel(context.Background(), b.ID, "res-1")
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if c.Status != StatusCancelled {
		t.Fatalf("expected cancelled, got %s", c.Status)
	}

	// idempotente
	c2, err := svc.Cancel(context.Background(), b.ID, "res-1")
	if err != nil {
		t.Fatalf("Cancel #2 error: %v", err)
	}
	if c2.Status != StatusCancelled {
		t.Fatalf("expected cancelled after repeat, got %s", c2.Status)
	}

	if _, err := svc.Cancel(context.Background(), "nope", "res-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
