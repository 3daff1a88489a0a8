package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/elchananT/personal-coach-demo-website/internal/booking"
	"github.com/elchananT/personal-coach-demo-website/internal/model"
	"github.com/elchananT/personal-coach-demo-website/internal/repository"
)

// bookingServiceImpl is the production implementation of BookingService.
type bookingServiceImpl struct {
	repo repository.BookingRepository
	now  func() time.Time
}

// NewBookingService creates a BookingService backed by the given repository.
func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingServiceImpl{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Submit stores a new booking. It sets the status to "new" and
// populates CreatedAt/UpdatedAt timestamps before persisting.
func (s *bookingServiceImpl) Submit(ctx context.Context, b *model.Booking) error {
	now := s.now()
	b.Status = model.BookingStatusNew
	b.CreatedAt = now
	b.UpdatedAt = now
	if err := s.repo.Save(ctx, b); err != nil {
		return fmt.Errorf("save booking: %w", err)
	}
	slog.InfoContext(ctx, "booking accepted", "booking_id", b.ID, "goal", b.Goal, "timeframe", b.Timeframe)
	return nil
}

func (s *bookingServiceImpl) Get(ctx context.Context, id string) (*model.Booking, error) {
	return s.repo.Get(ctx, id)
}

// List returns bookings according to the given filter/pagination options.
func (s *bookingServiceImpl) List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error) {
	return s.repo.List(ctx, opts)
}

// UpdateStatus changes the status of a booking.
func (s *bookingServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	if !IsValidBookingStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// NewBookingSubmitter persists every form that passes validation through svc.
// onSaved, when non-nil, receives the stored booking.
func NewBookingSubmitter(svc BookingService, onSaved func(*model.Booking)) booking.Submitter {
	return booking.SubmitterFunc(func(ctx context.Context, f model.BookingForm) error {
		b := model.NewBooking(f)
		if err := svc.Submit(ctx, b); err != nil {
			return err
		}
		if onSaved != nil {
			onSaved(b)
		}
		return nil
	})
}
