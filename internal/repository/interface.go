package repository

import (
	"context"

	"github.com/elchananT/personal-coach-demo-website/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// BookingRepository defines the persistence interface for consultation bookings.
// It is defined here (in repository) to avoid an import cycle with service.
type BookingRepository interface {
	Save(ctx context.Context, b *model.Booking) error
	Get(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
