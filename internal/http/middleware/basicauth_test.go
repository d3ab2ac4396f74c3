package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(username, password string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/messages", BasicAuth(username, password, "Login Required"), func(c *gin.Context) {
		c.String(http.StatusOK, "listing")
	})
	return r
}

func TestBasicAuth_NoCredentials_ChallengesWith401(t *testing.T) {
	r := newAuthRouter("admin", "pw")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	got := w.Header().Get("WWW-Authenticate")
	if !strings.HasPrefix(got, "Basic") {
		t.Fatalf("WWW-Authenticate = %q; want Basic challenge", got)
	}
	if !strings.Contains(got, `realm="Login Required"`) {
		t.Fatalf("WWW-Authenticate missing realm: %q", got)
	}
	if strings.Contains(w.Body.String(), "listing") {
		t.Fatalf("protected body leaked on 401")
	}
}

func TestBasicAuth_WrongPassword_Rejected(t *testing.T) {
	r := newAuthRouter("admin", "pw")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	req.SetBasicAuth("admin", "wrong")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if w.Header().Get("WWW-Authenticate") == "" {
		t.Fatalf("challenge header missing on wrong password")
	}
}

func TestBasicAuth_WrongUsername_Rejected(t *testing.T) {
	r := newAuthRouter("admin", "pw")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	req.SetBasicAuth("root", "pw")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestBasicAuth_ExactMatch_Passes(t *testing.T) {
	r := newAuthRouter("admin", "pw")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	req.SetBasicAuth("admin", "pw")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "listing" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
}

func TestBasicAuth_UnconfiguredPassword_RejectsEverything(t *testing.T) {
	r := newAuthRouter("admin", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	req.SetBasicAuth("admin", "")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when no password configured, got %d", w.Code)
	}
}
