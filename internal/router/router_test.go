package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"urbanizacion-api/internal/router"
)

func doReq(t *testing.T, baseURL, method, path, userID string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}

func registerProfile(t *testing.T, baseURL, userID, fullName, role, house string) {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/profiles", userID, map[string]any{
		"full_name":    fullName,
		"role":         role,
		"house_number": house,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating profile %s, got %d body=%s", userID, st, string(body))
	}
}

func TestHTTP_EndToEnd_AccessTokenFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	residentID := "resident-1"
	guardID := "guard-1"

	registerProfile(t, ts.URL, residentID, "Resident A", "resident", "A-12")
	registerProfile(t, ts.URL, guardID, "Guardia Uno", "guard", "")

	// 1) Sin sesión no se emiten códigos
	{
		st, _ := doReq(t, ts.URL, "POST", "/access/tokens", "", map[string]any{
			"visitor_name": "Juan Perez",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without session, got %d", st)
		}
	}

	// 2) Nombre vacío se rechaza
	{
		st, _ := doReq(t, ts.URL, "POST", "/access/tokens", residentID, map[string]any{
			"visitor_name": "   ",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for blank visitor name, got %d", st)
		}
	}

	// 3) El residente emite un código
	var code string
	{
		st, body := doReq(t, ts.URL, "POST", "/access/tokens", residentID, map[string]any{
			"visitor_name": "Maria Lopez",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 issuing token, got %d body=%s", st, string(body))
		}

		var out struct {
			Code       string    `json:"code"`
			ValidUntil time.Time `json:"valid_until"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("unmarshal issue response: %v", err)
		}
		if out.Code == "" {
			t.Fatalf("expected non-empty code")
		}
		if out.ValidUntil.Before(time.Now()) {
			t.Fatalf("expected future valid_until, got %v", out.ValidUntil)
		}
		code = out.Code
	}

	// 4) El guardia verifica: acceso permitido con datos del residente
	{
		st, body := doReq(t, ts.URL, "POST", "/access/verify", guardID, map[string]any{
			"code": code,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 verifying, got %d body=%s", st, string(body))
		}

		var out struct {
			Granted      bool   `json:"granted"`
			Message      string `json:"message"`
			VisitorName  string `json:"visitor_name"`
			ResidentName string `json:"resident_name"`
			HouseNumber  string `json:"house_number"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("unmarshal verify response: %v", err)
		}
		if !out.Granted {
			t.Fatalf("expected granted, got message %q", out.Message)
		}
		if out.VisitorName != "Maria Lopez" || out.ResidentName != "Resident A" || out.HouseNumber != "A-12" {
			t.Fatalf("unexpected verification payload: %+v", out)
		}
	}

	// 5) Replay: el mismo código se rechaza como ya usado
	{
		st, body := doReq(t, ts.URL, "POST", "/access/verify", guardID, map[string]any{
			"code": code,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 on replay verify, got %d", st)
		}

		var out struct {
			Granted bool   `json:"granted"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("unmarshal replay response: %v", err)
		}
		if out.Granted {
			t.Fatalf("replay must not grant access")
		}
		if out.Message != "Este código YA FUE UTILIZADO." {
			t.Fatalf("unexpected replay message: %q", out.Message)
		}
	}

	// 6) El historial del residente muestra el token consumido
	{
		st, body := doReq(t, ts.URL, "GET", "/me/tokens", residentID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing my tokens, got %d", st)
		}

		var out []struct {
			VisitorName string `json:"visitor_name"`
			Used        bool   `json:"used"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("unmarshal tokens list: %v", err)
		}
		if len(out) != 1 || !out[0].Used || out[0].VisitorName != "Maria Lopez" {
			t.Fatalf("unexpected token history: %+v", out)
		}
	}
}

func TestHTTP_PaymentsRequireAdmin(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	adminID := "admin-1"
	residentID := "resident-1"

	registerProfile(t, ts.URL, adminID, "Admin", "admin", "")
	registerProfile(t, ts.URL, residentID, "Resident A", "resident", "A-12")

	// residente no ve el panel financiero
	{
		st, _ := doReq(t, ts.URL, "GET", "/payments/summary", residentID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for resident, got %d", st)
		}
	}

	// admin registra pagos
	for _, p := range []map[string]any{
		{"profile_id": residentID, "amount": 100.0, "status": "paid"},
		{"profile_id": residentID, "amount": 50.0, "status": "pending"},
	} {
		st, body := doReq(t, ts.URL, "POST", "/payments", adminID, p)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating payment, got %d body=%s", st, string(body))
		}
	}

	// resumen del panel
	{
		st, body := doReq(t, ts.URL, "GET", "/payments/summary", adminID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d", st)
		}

		var out struct {
			TotalCollected float64 `json:"total_collected"`
			TotalPending   float64 `json:"total_pending"`
			PaidThisMonth  int     `json:"paid_this_month"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("unmarshal summary: %v", err)
		}
		if out.TotalCollected != 100 || out.TotalPending != 50 || out.PaidThisMonth != 1 {
			t.Fatalf("unexpected summary: %+v", out)
		}
	}

	// el residente ve su propio historial
	{
		st, body := doReq(t, ts.URL, "GET", "/me/payments", residentID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 my payments, got %d", st)
		}
		var out []struct {
			Amount float64 `json:"amount"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("unmarshal my payments: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 payments, got %d", len(out))
		}
	}
}

func TestHTTP_Bookings_RolesAndCalendar(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	residentID := "resident-1"
	guardID := "guard-1"

	registerProfile(t, ts.URL, residentID, "Resident A", "resident", "A-12")
	registerProfile(t, ts.URL, guardID, "Guardia Uno", "guard", "")

	start := time.Date(2026, 5, 9, 15, 0, 0, 0, time.UTC)

	// guardia no reserva
	{
		st, _ := doReq(t, ts.URL, "POST", "/bookings", guardID, map[string]any{
			"area_name":  "BBQ Area",
			"start_time": start.Format(time.RFC3339),
			"end_time":   start.Add(2 * time.Hour).Format(time.RFC3339),
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for guard booking, got %d", st)
		}
	}

	// residente reserva
	{
		st, body := doReq(t, ts.URL, "POST", "/bookings", residentID, map[string]any{
			"area_name":  "BBQ Area",
			"start_time": start.Format(time.RFC3339),
			"end_time":   start.Add(2 * time.Hour).Format(time.RFC3339),
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating booking, got %d body=%s", st, string(body))
		}
	}

	// área desconocida se rechaza
	{
		st, _ := doReq(t, ts.URL, "POST", "/bookings", residentID, map[string]any{
			"area_name":  "Helipuerto",
			"start_time": start.Format(time.RFC3339),
			"end_time":   start.Add(time.Hour).Format(time.RFC3339),
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown area, got %d", st)
		}
	}

	// el calendario del mes la muestra
	{
		st, body := doReq(t, ts.URL, "GET", "/bookings?year=2026&month=5", guardID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing bookings, got %d", st)
		}
		var out []struct {
			AreaName string `json:"area_name"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("unmarshal bookings: %v", err)
		}
		if len(out) != 1 || out[0].AreaName != "BBQ Area" {
			t.Fatalf("unexpected calendar contents: %+v", out)
		}
	}

	// otro mes viene vacío
	{
		st, body := doReq(t, ts.URL, "GET", "/bookings?year=2026&month=6", guardID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing empty month, got %d", st)
		}
		var out []any
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("unmarshal empty month: %v", err)
		}
		if len(out) != 0 {
			t.Fatalf("expected empty calendar, got %d items", len(out))
		}
	}
}

func TestHTTP_MeIncludesDashboardPath(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	registerProfile(t, ts.URL, "guard-1", "Guardia Uno", "guard", "")

	st, body := doReq(t, ts.URL, "GET", "/me", "guard-1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 on /me, got %d", st)
	}

	var out struct {
		Role          string `json:"role"`
		DashboardPath string `json:"dashboard_path"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal /me: %v", err)
	}
	if out.Role != "guard" || out.DashboardPath != "/guard/scan" {
		t.Fatalf("unexpected /me payload: %+v", out)
	}

	// rol desconocido no se registra (no hay fallback silencioso a resident)
	stBad, _ := doReq(t, ts.URL, "POST", "/profiles", "x-1", map[string]any{
		"full_name": "X",
		"role":      "superuser",
	})
	if stBad != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", stBad)
	}
}
