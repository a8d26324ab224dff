package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	CreateSession(rec)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "admin_session" {
			return c
		}
	}
	t.Fatal("no admin_session cookie set")
	return nil
}

func TestSessionRoundTrip(t *testing.T) {
	c := sessionCookie(t)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(c)
	if !IsAdmin(req) {
		t.Fatal("valid session rejected")
	}
}

func TestSessionTamperRejected(t *testing.T) {
	c := sessionCookie(t)
	parts := strings.Split(c.Value, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", c.Value)
	}
	// push the expiry far into the future without re-signing
	parts[1] = "9999999999"
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: c.Name, Value: strings.Join(parts, ".")})
	if IsAdmin(req) {
		t.Fatal("tampered session accepted")
	}
}

func TestNoCookieRejected(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if IsAdmin(req) {
		t.Fatal("missing cookie accepted")
	}
}

func TestRequireAdminRedirects(t *testing.T) {
	h := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Fatalf("expected redirect to /admin/login got %s", loc)
	}
}

func TestStaticCredentials(t *testing.T) {
	creds, err := NewStaticCredentials("admin", "s3cret")
	if err != nil {
		t.Fatalf("new credentials: %v", err)
	}
	if !creds.Verify("admin", "s3cret") {
		t.Fatal("valid credentials rejected")
	}
	if creds.Verify("admin", "wrong") {
		t.Fatal("wrong password accepted")
	}
	if creds.Verify("root", "s3cret") {
		t.Fatal("wrong username accepted")
	}
}
