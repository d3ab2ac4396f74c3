package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-portfolio-backend/internal/config"
	"github.com/tbourn/go-portfolio-backend/internal/mail"
	"github.com/tbourn/go-portfolio-backend/internal/repo"
)

type recordingMailer struct {
	sent []mail.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB, *recordingMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:router_%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	t.Setenv("ADMIN_USER", "admin")
	t.Setenv("ADMIN_PASSWORD", "pw")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	m := &recordingMailer{}
	r := gin.New()
	RegisterRoutes(r, db, m, cfg)
	return r, db, m
}

func do(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	r, _, _ := newTestServer(t)

	if w := do(r, httptest.NewRequest(http.MethodGet, "/health", nil)); w.Code != http.StatusOK {
		t.Fatalf("/health = %d", w.Code)
	}
	if w := do(r, httptest.NewRequest(http.MethodGet, "/metrics", nil)); w.Code != http.StatusOK {
		t.Fatalf("/metrics = %d", w.Code)
	}
}

func TestRouter_LandingPage(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("/ = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("Content-Type = %q", ct)
	}
}

func TestRouter_StaticAssets(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/static/js/script.js", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("/static/js/script.js = %d", w.Code)
	}

	w = do(r, httptest.NewRequest(http.MethodGet, "/static/images/nope.png", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing static asset = %d; want 404", w.Code)
	}
}

func TestRouter_NoRoute_RendersErrorPage(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/definitely/not/here", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unmatched route = %d; want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "404") {
		t.Fatalf("expected rendered 404 page")
	}
}

func TestRouter_ContactEndToEnd(t *testing.T) {
	r, db, m := newTestServer(t)

	body := `{"name":"Ana","email":"ana@x.com","message":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := do(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /contact = %d (body: %s)", w.Code, w.Body.String())
	}

	var sr struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &sr); err != nil {
		t.Fatalf("json: %v", err)
	}
	if sr.Status != "success" || sr.Message != "Message sent successfully!" {
		t.Fatalf("unexpected envelope: %+v", sr)
	}

	if n, err := repo.CountContactMessages(context.Background(), db); err != nil || n != 1 {
		t.Fatalf("expected 1 committed row, got %d (err %v)", n, err)
	}
	if len(m.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(m.sent))
	}
}

func TestRouter_ContactValidation_WritesNothing(t *testing.T) {
	r, db, m := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(`{"name":"","email":"ana@x.com","message":"Hi"}`))
	req.Header.Set("Content-Type", "application/json")

	w := do(r, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("POST /contact = %d; want 400", w.Code)
	}
	if n, _ := repo.CountContactMessages(context.Background(), db); n != 0 {
		t.Fatalf("expected zero rows, got %d", n)
	}
	if len(m.sent) != 0 {
		t.Fatalf("no notification expected on validation failure")
	}
}

func TestRouter_AdminGate(t *testing.T) {
	r, _, _ := newTestServer(t)

	// No credentials: 401 + challenge, no listing leaked.
	w := do(r, httptest.NewRequest(http.MethodGet, "/admin/messages", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if got := w.Header().Get("WWW-Authenticate"); !strings.HasPrefix(got, "Basic") {
		t.Fatalf("WWW-Authenticate = %q", got)
	}

	// Wrong password: still 401.
	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	req.SetBasicAuth("admin", "wrong")
	if w := do(r, req); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", w.Code)
	}

	// Exact match: 200 with the listing.
	req = httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	req.SetBasicAuth("admin", "pw")
	w = do(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid credentials: expected 200, got %d", w.Code)
	}
}

func TestRouter_SecurityHeadersPresent(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("missing nosniff header")
	}
	if w.Header().Get("Content-Security-Policy") == "" {
		t.Fatalf("missing CSP header on HTML page")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
}
