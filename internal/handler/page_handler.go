package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/elchananT/personal-coach-demo-website/internal/booking"
	"github.com/elchananT/personal-coach-demo-website/internal/content"
	"github.com/elchananT/personal-coach-demo-website/internal/metrics"
	"github.com/elchananT/personal-coach-demo-website/internal/model"
	"github.com/elchananT/personal-coach-demo-website/internal/web"
)

const (
	channelForm = "form"

	noticeSubmitFailed = "Sorry, we couldn't send your request. Please try again in a moment."
	noticeTooLong      = "Your message is too long. Please keep it under 5000 characters."
)

// PageHandler renders the marketing pages and handles the HTML booking form.
type PageHandler struct {
	content  *model.SiteContent
	renderer *web.Renderer
	forms    FormFactory
	now      func() time.Time
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(c *model.SiteContent, r *web.Renderer, forms FormFactory) *PageHandler {
	return &PageHandler{content: c, renderer: r, forms: forms, now: time.Now}
}

// Home handles GET /.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageHome, idleForm())
}

// Booking handles GET /booking.
func (h *PageHandler) Booking(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageBooking, idleForm())
}

// SubmitBooking handles POST /booking. The form is re-rendered with field
// errors (422), with a form-level notice when saving failed (503), or replaced
// by the thank-you panel (200).
func (h *PageHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	values := model.BookingForm{
		Name:      r.PostForm.Get(model.FieldName),
		Email:     r.PostForm.Get(model.FieldEmail),
		Goal:      r.PostForm.Get(model.FieldGoal),
		Timeframe: r.PostForm.Get(model.FieldTimeframe),
		Message:   r.PostForm.Get(model.FieldMessage),
	}
	if utf8.RuneCountInString(values.Message) > maxMessageLength {
		h.render(w, r, http.StatusUnprocessableEntity, web.PageBooking, web.FormView{
			State:  booking.StateIdle.String(),
			Values: values,
			Errors: model.FieldErrors{},
			Notice: noticeTooLong,
		})
		return
	}

	form := h.forms.New(nil)
	form.Load(values)

	start := time.Now()
	state, err := form.Submit(r.Context())
	view := web.FormView{State: state.String(), Values: form.Values(), Errors: form.Errors()}

	switch {
	case errors.Is(err, booking.ErrInvalid):
		h.forms.Metrics.ObserveSubmission(channelForm, metrics.OutcomeInvalid, view.Errors, 0)
		h.render(w, r, http.StatusUnprocessableEntity, web.PageBooking, view)
	case errors.Is(err, context.Canceled):
		// The visitor navigated away; nobody is left to render for.
		h.forms.Metrics.ObserveSubmission(channelForm, metrics.OutcomeCancelled, nil, time.Since(start))
		slog.InfoContext(r.Context(), "booking abandoned", "channel", channelForm)
	case err != nil:
		h.forms.Metrics.ObserveSubmission(channelForm, metrics.OutcomeFailed, nil, time.Since(start))
		slog.ErrorContext(r.Context(), "booking submit failed", "channel", channelForm, "error", err)
		view.Notice = noticeSubmitFailed
		h.render(w, r, http.StatusServiceUnavailable, web.PageBooking, view)
	default:
		h.forms.Metrics.ObserveSubmission(channelForm, metrics.OutcomeAccepted, nil, time.Since(start))
		h.render(w, r, http.StatusOK, web.PageBooking, view)
	}
}

// ResetBooking handles POST /booking/reset ("Send Another Message"). Forms
// live for one request, so resetting is rendering a fresh Idle form.
func (h *PageHandler) ResetBooking(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageBooking, idleForm())
}

// Content handles GET /api/content.
func (h *PageHandler) Content(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.content)
}

func idleForm() web.FormView {
	return web.FormView{State: booking.StateIdle.String(), Errors: model.FieldErrors{}}
}

// render buffers the page so a template error still yields a clean 500.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, form web.FormView) {
	data := web.PageData{
		Content: h.content,
		Meta:    content.PageMeta(h.content, page),
		Path:    r.URL.Path,
		Year:    h.now().Year(),
		Form:    form,
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		slog.ErrorContext(r.Context(), "render page failed", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
