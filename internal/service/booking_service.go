package service

import (
	"context"
	"errors"

	"github.com/elchananT/personal-coach-demo-website/internal/model"
)

// ErrInvalidStatus is returned by UpdateStatus for a status outside the allowed set.
var ErrInvalidStatus = errors.New("invalid booking status")

// BookingService defines the business logic for consultation bookings.
type BookingService interface {
	// Submit stores a new booking. b.ID, b.Status and timestamps are
	// populated by the implementation.
	Submit(ctx context.Context, b *model.Booking) error

	// Get returns a single booking by ID.
	Get(ctx context.Context, id string) (*model.Booking, error)

	// List returns bookings according to the given options.
	List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error)

	// UpdateStatus moves a booking through the staff triage states.
	UpdateStatus(ctx context.Context, id, status string) error
}

// IsValidBookingStatus reports whether status is one staff may assign.
func IsValidBookingStatus(status string) bool {
	switch status {
	case model.BookingStatusNew, model.BookingStatusContacted, model.BookingStatusScheduled, model.BookingStatusClosed:
		return true
	}
	return false
}
