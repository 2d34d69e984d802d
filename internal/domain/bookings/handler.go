package bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"urbanizacion-api/internal/domain/profiles"
	"urbanizacion-api/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// ProfileLookup resuelve rol y urbanización del usuario que reserva.
type ProfileLookup interface {
	GetByID(ctx context.Context, id string) (profiles.Profile, error)
}

func RegisterRoutes(r chi.Router, svc *Service, profs ProfileLookup) {
	r.Route("/bookings", func(br chi.Router) {
		br.Post("/", createBookingHandler(svc, profs))
		br.Get("/", listBookingsHandler(svc))
		br.Post("/{bookingID}/cancel", cancelBookingHandler(svc))
	})
}

type createBookingRequest struct {
	AreaName  string `json:"area_name"`
	StartTime string `json:"start_time"` // RFC3339
	EndTime   string `json:"end_time"`   // RFC3339
}

type bookingResponse struct {
	ID             string    `json:"id"`
	ProfileID      string    `json:"profile_id"`
	UrbanizacionID string    `json:"urbanizacion_id,omitempty"`
	AreaName       string    `json:"area_name"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func createBookingHandler(svc *Service, profs ProfileLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := profs.GetByID(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}

		// los guardias no reservan áreas comunales
		if p.Role != profiles.RoleResident && p.Role != profiles.RoleAdmin {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req createBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		start, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			http.Error(w, "start_time must be RFC3339", http.StatusBadRequest)
			return
		}
		end, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			http.Error(w, "end_time must be RFC3339", http.StatusBadRequest)
			return
		}

		b, err := svc.Create(r.Context(), CreateInput{
			ProfileID:      claims.UserID,
			UrbanizacionID: p.UrbanizacionID,
			AreaName:       req.AreaName,
			StartTime:      start,
			EndTime:        end,
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

		writeJSON(w, http.StatusCreated, toBookingResponse(b))
	}
}

func listBookingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		now := time.Now()
		year := now.Year()
		month := now.Month()

		if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
			y, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, "year must be numeric", http.StatusBadRequest)
				return
			}
			year = y
		}
		if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
			m, err := strconv.Atoi(v)
			if err != nil || m < 1 || m > 12 {
				http.Error(w, "month must be 1..12", http.StatusBadRequest)
				return
			}
			month = time.Month(m)
		}

		items, err := svc.ListMonth(r.Context(), year, month)
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		out := make([]bookingResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBookingResponse(b))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func cancelBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		bookingID := chi.URLParam(r, "bookingID")
		b, err := svc.Cancel(r.Context(), bookingID, claims.UserID)
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrForbidden:
				http.Error(w, "forbidden", http.StatusForbidden)
			case ErrNotFound:
				http.Error(w, "not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toBookingResponse(b))
	}
}

func toBookingResponse(b Booking) bookingResponse {
	return bookingResponse{
		ID:             b.ID,
		ProfileID:      b.ProfileID,
		UrbanizacionID: b.UrbanizacionID,
		AreaName:       b.AreaName,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en profiles/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
