package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/elchananT/personal-coach-demo-website/internal/model"
	"github.com/google/uuid"
)

// MemoryBookingRepository keeps bookings in process memory. It backs the
// server when no DATABASE_URL is configured; contents are lost on restart.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*model.Booking
	now      func() time.Time
}

// NewMemoryBookingRepository creates an empty in-memory repository.
func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings: make(map[string]*model.Booking),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

var (
	_ BookingRepository = (*MemoryBookingRepository)(nil)
	_ DB                = (*MemoryBookingRepository)(nil)
)

// Ping always succeeds.
func (r *MemoryBookingRepository) Ping(context.Context) error { return nil }

func (r *MemoryBookingRepository) Save(_ context.Context, b *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = uuid.NewString()
	now := r.now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = b.CreatedAt
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *MemoryBookingRepository) Get(_ context.Context, id string) (*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *b
	return &out, nil
}

// List mirrors the Postgres ordering: newest first, then limit/offset.
func (r *MemoryBookingRepository) List(_ context.Context, opts model.BookingListOptions) ([]*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status := strings.TrimSpace(opts.Status)
	var matched []*model.Booking
	for _, b := range r.bookings {
		if status != "" && status != "all" && b.Status != status {
			continue
		}
		out := *b
		matched = append(matched, &out)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	// LIMIT 0 returns no rows in Postgres too.
	if opts.Limit <= 0 || opts.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[opts.Offset:]
	if opts.Limit < len(matched) {
		matched = matched[:opts.Limit]
	}
	return matched, nil
}

func (r *MemoryBookingRepository) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = r.now()
	return nil
}
