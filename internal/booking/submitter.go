package booking

import (
	"context"
	"time"

	"github.com/elchananT/personal-coach-demo-website/internal/model"
)

// DefaultSubmitDelay is the simulated latency of a submission.
const DefaultSubmitDelay = 1500 * time.Millisecond

// Submitter receives a form that passed validation.
type Submitter interface {
	Submit(ctx context.Context, f model.BookingForm) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, f model.BookingForm) error

func (fn SubmitterFunc) Submit(ctx context.Context, f model.BookingForm) error {
	return fn(ctx, f)
}

// Delayed waits d before handing the form to next. The wait ends early with
// ctx.Err() when ctx is cancelled, and next is not called. A nil next only waits.
func Delayed(d time.Duration, next Submitter) Submitter {
	return SubmitterFunc(func(ctx context.Context, f model.BookingForm) error {
		if d > 0 {
			t := time.NewTimer(d)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		return next.Submit(ctx, f)
	})
}
