package handler

import (
	"time"

	"github.com/elchananT/personal-coach-demo-website/internal/booking"
	"github.com/elchananT/personal-coach-demo-website/internal/metrics"
	"github.com/elchananT/personal-coach-demo-website/internal/model"
	"github.com/elchananT/personal-coach-demo-website/internal/service"
)

const (
	// maxMessageLength caps the optional free-text field, in runes.
	maxMessageLength = 5000

	// maxFormBytes bounds a booking request body, urlencoded or JSON.
	maxFormBytes = 64 << 10
)

// FormFactory builds a fresh booking.Form for each request. Every form waits
// Delay before handing the values to the booking service.
type FormFactory struct {
	Service service.BookingService
	Delay   time.Duration
	Metrics *metrics.Metrics
}

// New returns an Idle form. onSaved receives the stored booking, if any.
func (f FormFactory) New(onSaved func(*model.Booking)) *booking.Form {
	sub := booking.Delayed(f.Delay, service.NewBookingSubmitter(f.Service, onSaved))
	return booking.NewForm(sub, booking.WithObserver(f.Metrics.Transition))
}
