package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/elchananT/personal-coach-demo-website/internal/booking"
	"github.com/elchananT/personal-coach-demo-website/internal/metrics"
	"github.com/elchananT/personal-coach-demo-website/internal/model"
	"github.com/elchananT/personal-coach-demo-website/internal/repository"
	"github.com/elchananT/personal-coach-demo-website/internal/service"
	"github.com/elchananT/personal-coach-demo-website/pkg/auth"
)

const channelAPI = "api"

// BookingHandler serves the JSON booking API and the staff triage endpoints.
type BookingHandler struct {
	forms   FormFactory
	service service.BookingService
	metrics *metrics.Metrics
}

// NewBookingHandler creates a BookingHandler. forms.Service is also used for
// the staff endpoints.
func NewBookingHandler(forms FormFactory) *BookingHandler {
	return &BookingHandler{forms: forms, service: forms.Service, metrics: forms.Metrics}
}

type submitResponse struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

type validationResponse struct {
	Error  string            `json:"error,omitempty"`
	Errors model.FieldErrors `json:"errors"`
}

// Submit handles POST /api/bookings.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBookingForm(w, r)
	if !ok {
		return
	}
	if utf8.RuneCountInString(req.Message) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "message_too_long")
		return
	}

	var saved *model.Booking
	form := h.forms.New(func(b *model.Booking) { saved = b })
	form.Load(req)

	start := time.Now()
	state, err := form.Submit(r.Context())
	switch {
	case errors.Is(err, booking.ErrInvalid):
		errs := form.Errors()
		h.metrics.ObserveSubmission(channelAPI, metrics.OutcomeInvalid, errs, 0)
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Error: "validation_failed", Errors: errs})
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.metrics.ObserveSubmission(channelAPI, metrics.OutcomeCancelled, nil, time.Since(start))
		slog.InfoContext(r.Context(), "booking abandoned", "channel", channelAPI, "error", err)
		writeError(w, http.StatusServiceUnavailable, "submit_cancelled")
		return
	case err != nil:
		h.metrics.ObserveSubmission(channelAPI, metrics.OutcomeFailed, nil, time.Since(start))
		slog.ErrorContext(r.Context(), "booking submit failed", "channel", channelAPI, "error", err)
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	h.metrics.ObserveSubmission(channelAPI, metrics.OutcomeAccepted, nil, time.Since(start))
	resp := submitResponse{State: state.String()}
	if saved != nil {
		resp.ID = saved.ID
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Validate handles POST /api/bookings/validate. It never submits; the
// response lists the fields that would fail.
func (h *BookingHandler) Validate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBookingForm(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, validationResponse{Errors: booking.Validate(req)})
}

// decodeBookingForm reads a JSON booking body of at most maxFormBytes. On
// failure it writes 413 request_too_large or 400 invalid_json.
func decodeBookingForm(w http.ResponseWriter, r *http.Request) (model.BookingForm, bool) {
	var req model.BookingForm
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes)).Decode(&req)
	if err == nil {
		return req, true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request_too_large")
	} else {
		writeError(w, http.StatusBadRequest, "invalid_json")
	}
	return model.BookingForm{}, false
}

// adminListResponse is the JSON response for GET /api/admin/bookings.
type adminListResponse struct {
	Bookings []*model.Booking `json:"bookings"`
}

// AdminList handles GET /api/admin/bookings (staff only).
// Supports query params: status (all/new/contacted/scheduled/closed), limit, offset.
func (h *BookingHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.StaffIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	opts := model.BookingListOptions{
		Status: r.URL.Query().Get("status"),
		Limit:  20,
		Offset: 0,
	}
	if opts.Status != "" && opts.Status != "all" && !service.IsValidBookingStatus(opts.Status) {
		writeError(w, http.StatusBadRequest, "invalid_status")
		return
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	bookings, err := h.service.List(r.Context(), opts)
	if err != nil {
		slog.ErrorContext(r.Context(), "list bookings failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	// Return [] not null for empty lists
	if bookings == nil {
		bookings = []*model.Booking{}
	}
	writeJSON(w, http.StatusOK, adminListResponse{Bookings: bookings})
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/bookings/{id}/status (staff only).
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	staffID, ok := auth.StaffIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := r.PathValue("id")
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	err := h.service.UpdateStatus(r.Context(), id, req.Status)
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid_status")
		return
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "update booking status failed", "booking_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	slog.InfoContext(r.Context(), "booking status updated", "booking_id", id, "status", req.Status, "staff_id", staffID)
	w.WriteHeader(http.StatusNoContent)
}
