package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/elchananT/personal-coach-demo-website/internal/booking"
	"github.com/elchananT/personal-coach-demo-website/internal/content"
	"github.com/elchananT/personal-coach-demo-website/internal/model"
	"github.com/elchananT/personal-coach-demo-website/internal/web"
)

func newTestPageHandler(t *testing.T, svc *mockBookingService) *PageHandler {
	t.Helper()
	r, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	forms, _ := testForms(svc)
	h := NewPageHandler(content.Default(), r, forms)
	h.now = func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }
	return h
}

func postForm(target string, v url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(v.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validValues() url.Values {
	return url.Values{
		"name":      {"Jane Doe"},
		"email":     {"jane@example.com"},
		"goal":      {"weight-loss"},
		"timeframe": {"this-month"},
	}
}

func TestPageHandler_Home(t *testing.T) {
	h := newTestPageHandler(t, &mockBookingService{})

	rec := httptest.NewRecorder()
	h.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected text/html, got %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{`id="programs"`, `id="faq"`, `id="contact"`, "2026"} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestPageHandler_Booking(t *testing.T) {
	h := newTestPageHandler(t, &mockBookingService{})

	rec := httptest.NewRecorder()
	h.Booking(rec, httptest.NewRequest(http.MethodGet, "/booking", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Book a Session | Leo Coach") {
		t.Error("expected booking page title")
	}
	if strings.Contains(body, `id="programs"`) {
		t.Error("booking page should not render the programs section")
	}
}

func TestPageHandler_SubmitBooking_Invalid(t *testing.T) {
	called := false
	h := newTestPageHandler(t, &mockBookingService{
		submitFunc: func(ctx context.Context, b *model.Booking) error {
			called = true
			return nil
		},
	})

	v := validValues()
	v.Set("email", "not-an-email")
	v.Del("goal")
	rec := httptest.NewRecorder()
	h.SubmitBooking(rec, postForm("/booking", v))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if called {
		t.Error("service must not be called for an invalid form")
	}
	body := rec.Body.String()
	for _, want := range []string{booking.MsgEmailInvalid, booking.MsgGoalRequired, `value="Jane Doe"`, `value="not-an-email"`} {
		if !strings.Contains(body, want) {
			t.Errorf("response missing %q", want)
		}
	}
	if strings.Contains(body, booking.MsgNameRequired) {
		t.Error("name is valid and must not show an error")
	}
}

func TestPageHandler_SubmitBooking_Success(t *testing.T) {
	var stored *model.Booking
	h := newTestPageHandler(t, &mockBookingService{
		submitFunc: func(ctx context.Context, b *model.Booking) error {
			stored = b
			return nil
		},
	})

	rec := httptest.NewRecorder()
	h.SubmitBooking(rec, postForm("/booking", validValues()))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stored == nil || stored.Goal != "weight-loss" {
		t.Fatalf("expected booking to be stored, got %+v", stored)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Send Another Message") {
		t.Error("expected thank-you panel")
	}
	if strings.Contains(body, `name="email"`) {
		t.Error("form must be replaced by the thank-you panel")
	}
}

func TestPageHandler_SubmitBooking_ServiceError(t *testing.T) {
	h := newTestPageHandler(t, &mockBookingService{
		submitFunc: func(ctx context.Context, b *model.Booking) error {
			return errors.New("db down")
		},
	})

	rec := httptest.NewRecorder()
	h.SubmitBooking(rec, postForm("/booking", validValues()))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "couldn&#39;t send your request") {
		t.Error("expected form-level notice")
	}
	if !strings.Contains(body, `value="jane@example.com"`) {
		t.Error("expected values to be kept")
	}
}

func TestPageHandler_SubmitBooking_MessageTooLong(t *testing.T) {
	h := newTestPageHandler(t, &mockBookingService{})

	v := validValues()
	v.Set("message", strings.Repeat("x", maxMessageLength+1))
	rec := httptest.NewRecorder()
	h.SubmitBooking(rec, postForm("/booking", v))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Your message is too long") {
		t.Error("expected too-long notice")
	}
}

func TestPageHandler_ResetBooking(t *testing.T) {
	h := newTestPageHandler(t, &mockBookingService{})

	rec := httptest.NewRecorder()
	h.ResetBooking(rec, httptest.NewRequest(http.MethodPost, "/booking/reset", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `name="email" value=""`) {
		t.Error("expected an empty form")
	}
	if strings.Contains(body, "field-error") {
		t.Error("reset form must carry no errors")
	}
}

func TestPageHandler_Content(t *testing.T) {
	h := newTestPageHandler(t, &mockBookingService{})

	rec := httptest.NewRecorder()
	h.Content(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got model.SiteContent
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Brand.Name != "Leo Coach" {
		t.Errorf("expected brand Leo Coach, got %q", got.Brand.Name)
	}
	if len(got.Programs) != 3 {
		t.Errorf("expected 3 programs, got %d", len(got.Programs))
	}
}
