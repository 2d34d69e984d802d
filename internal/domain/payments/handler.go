package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"urbanizacion-api/internal/domain/profiles"
	"urbanizacion-api/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RoleLookup evita importar el service de profiles completo en cada handler.
type RoleLookup interface {
	RoleOf(ctx context.Context, userID string) (profiles.Role, error)
}

func RegisterRoutes(r chi.Router, svc *Service, roles RoleLookup) {
	r.Route("/payments", func(pr chi.Router) {
		pr.Get("/", listPaymentsHandler(svc, roles))
		pr.Get("/summary", summaryHandler(svc, roles))
		pr.Post("/", createPaymentHandler(svc, roles))
	})

	r.Get("/me/payments", listMyPaymentsHandler(svc))
}

type paymentResponse struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	Amount    float64   `json:"amount"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type summaryResponse struct {
	TotalCollected float64 `json:"total_collected"`
	TotalPending   float64 `json:"total_pending"`
	PaidThisMonth  int     `json:"paid_this_month"`
}

type createPaymentRequest struct {
	ProfileID string  `json:"profile_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

func requireAdmin(roles RoleLookup) func(r *http.Request) (string, int) {
	return func(r *http.Request) (string, int) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			return "", http.StatusUnauthorized
		}
		role, err := roles.RoleOf(r.Context(), claims.UserID)
		if err != nil || role != profiles.RoleAdmin {
			return "", http.StatusForbidden
		}
		return claims.UserID, 0
	}
}

func listPaymentsHandler(svc *Service, roles RoleLookup) http.HandlerFunc {
	check := requireAdmin(roles)
	return func(w http.ResponseWriter, r *http.Request) {
		if _, status := check(r); status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}

		items, err := svc.ListRecent(r.Context(), 10)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]paymentResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPaymentResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func summaryHandler(svc *Service, roles RoleLookup) http.HandlerFunc {
	check := requireAdmin(roles)
	return func(w http.ResponseWriter, r *http.Request) {
		if _, status := check(r); status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}

		sum, err := svc.Summarize(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, summaryResponse{
			TotalCollected: sum.TotalCollected,
			TotalPending:   sum.TotalPending,
			PaidThisMonth:  sum.PaidThisMonth,
		})
	}
}

func createPaymentHandler(svc *Service, roles RoleLookup) http.HandlerFunc {
	check := requireAdmin(roles)
	return func(w http.ResponseWriter, r *http.Request) {
		if _, status := check(r); status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}

		var req createPaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			ProfileID: req.ProfileID,
			Amount:    req.Amount,
			Status:    req.Status,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPaymentResponse(p))
	}
}

func listMyPaymentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByProfile(r.Context(), claims.UserID, 5)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]paymentResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPaymentResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toPaymentResponse(p Payment) paymentResponse {
	return paymentResponse{
		ID:        p.ID,
		ProfileID: p.ProfileID,
		Amount:    p.Amount,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en profiles/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
