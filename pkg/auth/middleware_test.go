package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testSecret() []byte {
	return SessionSecretBytes("dev-secret-change-in-production-32bytes")
}

func TestRequireStaff_NoToken_Returns401(t *testing.T) {
	mw := RequireStaff(testSecret())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireStaff_InvalidToken_Returns401(t *testing.T) {
	mw := RequireStaff(testSecret())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: "invalid.token"})
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireStaff_ValidCookie_CallsNextWithStaffID(t *testing.T) {
	secret := testSecret()
	token := CreateSessionToken("coach", time.Now().Add(time.Hour), secret)
	mw := RequireStaff(secret)

	var gotStaffID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStaffID, _ = StaffIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: token})
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if gotStaffID != "coach" {
		t.Errorf("expected staff ID coach, got %q", gotStaffID)
	}
}

func TestRequireStaff_BearerHeader(t *testing.T) {
	secret := testSecret()
	token := CreateSessionToken("coach", time.Now().Add(time.Hour), secret)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	RequireStaff(secret)(next).ServeHTTP(rec, req)

	if !called {
		t.Errorf("expected next to be called, got status %d", rec.Code)
	}
}

func TestRequireStaff_ExpiredToken_Returns401(t *testing.T) {
	secret := testSecret()
	token := CreateSessionToken("coach", time.Now().Add(-time.Minute), secret)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: token})
	rec := httptest.NewRecorder()
	RequireStaff(secret)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestStaffIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := StaffIDFromContext(req.Context()); ok {
		t.Error("expected no staff ID in a fresh context")
	}
	if _, ok := StaffIDFromContext(WithStaffID(req.Context(), "")); ok {
		t.Error("an empty staff ID must not count as authenticated")
	}
}
