package accesstokens

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"urbanizacion-api/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/access", func(ar chi.Router) {
		ar.Post("/tokens", issueTokenHandler(svc))
		ar.Post("/verify", verifyTokenHandler(svc))
	})

	r.Get("/me/tokens", listMyTokensHandler(svc))
}

type issueTokenRequest struct {
	VisitorName string `json:"visitor_name"`
}

type issueTokenResponse struct {
	Code       string    `json:"code"`
	ValidUntil time.Time `json:"valid_until"`
}

type verifyTokenRequest struct {
	Code string `json:"code"`
}

type verificationResponse struct {
	Granted bool   `json:"granted"`
	Message string `json:"message"`

	VisitorName  string `json:"visitor_name,omitempty"`
	ResidentName string `json:"resident_name,omitempty"`
	HouseNumber  string `json:"house_number,omitempty"`
	Role         string `json:"role,omitempty"`
}

type tokenResponse struct {
	ID          string    `json:"id"`
	VisitorName string    `json:"visitor_name"`
	ValidUntil  time.Time `json:"valid_until"`
	Used        bool      `json:"used"`
	CreatedAt   time.Time `json:"created_at"`
}

// issueTokenHandler godoc
// @Summary Generar código QR de acceso
// @Description Genera un código de un solo uso, válido por 10 minutos, para el visitante indicado. El payload del QR es exactamente el campo `code`. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags access
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body issueTokenRequest true "Nombre del visitante"
// @Success 201 {object} issueTokenResponse
// @Failure 400 {string} string "visitor_name vacío"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "no se pudo generar el código"
// @Router /access/tokens [post]
func issueTokenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req issueTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Issue(r.Context(), claims.UserID, req.VisitorName)
		if err != nil {
			switch {
			case errors.Is(err, ErrUnauthorized):
				http.Error(w, "unauthorized", http.StatusUnauthorized)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "visitor_name required", http.StatusBadRequest)
			default:
				http.Error(w, "failed to generate access code", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, issueTokenResponse{
			Code:       t.Code,
			ValidUntil: t.ValidUntil,
		})
	}
}

// verifyTokenHandler godoc
// @Summary Verificar código de acceso
// @Description Verifica un código escaneado o tipeado en la garita y, si es válido, lo consume. La respuesta siempre es 200: la decisión viaja en `granted` + `message`.
// @Tags access
// @Accept json
// @Produce json
// @Param payload body verifyTokenRequest true "Código a verificar"
// @Success 200 {object} verificationResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Router /access/verify [post]
func verifyTokenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req verifyTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v := svc.Verify(r.Context(), req.Code)

		writeJSON(w, http.StatusOK, verificationResponse{
			Granted:      v.Granted,
			Message:      v.Message,
			VisitorName:  v.VisitorName,
			ResidentName: v.ResidentName,
			HouseNumber:  v.HouseNumber,
			Role:         v.Role,
		})
	}
}

// listMyTokensHandler godoc
// @Summary Historial de accesos del residente
// @Tags access
// @Produce json
// @Success 200 {array} tokenResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/tokens [get]
func listMyTokensHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID, 5)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]tokenResponse, 0, len(items))
		for _, t := range items {
			out = append(out, tokenResponse{
				ID:          t.ID,
				VisitorName: t.VisitorName,
				ValidUntil:  t.ValidUntil,
				Used:        t.Used,
				CreatedAt:   t.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en profiles/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
