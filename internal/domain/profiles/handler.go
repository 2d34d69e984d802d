package profiles

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"urbanizacion-api/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/me", meHandler(svc))
	r.Post("/profiles", createProfileHandler(svc))
}

type profileResponse struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Role           Role      `json:"role"`
	HouseNumber    string    `json:"house_number"`
	UrbanizacionID string    `json:"urbanizacion_id,omitempty"`
	DashboardPath  string    `json:"dashboard_path"`
	CreatedAt      time.Time `json:"created_at"`
}

type createProfileRequest struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	HouseNumber    string `json:"house_number"`
	UrbanizacionID string `json:"urbanizacion_id"`
}

func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

func createProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// Alta del propio perfil (post-signup) siempre permitida;
		// dar de alta perfiles de terceros requiere rol admin.
		if strings.TrimSpace(req.ID) == "" {
			req.ID = claims.UserID
		}
		if strings.TrimSpace(req.ID) != claims.UserID {
			if me, err := svc.GetByID(r.Context(), claims.UserID); err != nil || me.Role != RoleAdmin {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		p, err := svc.Create(r.Context(), CreateInput{
			ID:             req.ID,
			FullName:       req.FullName,
			Role:           req.Role,
			HouseNumber:    req.HouseNumber,
			UrbanizacionID: req.UrbanizacionID,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput, ErrUnknownRole:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toProfileResponse(p))
	}
}

func toProfileResponse(p Profile) profileResponse {
	return profileResponse{
		ID:             p.ID,
		FullName:       p.FullName,
		Role:           p.Role,
		HouseNumber:    p.HouseNumber,
		UrbanizacionID: p.UrbanizacionID,
		DashboardPath:  DashboardPath(p.Role),
		CreatedAt:      p.CreatedAt,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo;
// si se repite en más lugares conviene extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
