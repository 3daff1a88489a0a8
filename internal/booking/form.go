package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/elchananT/personal-coach-demo-website/internal/model"
)

// State is the submission state of a Form.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrInvalid is returned by Submit when validation fails. Details are in Errors().
	ErrInvalid = errors.New("booking: form has invalid fields")
	// ErrBusy is returned by Submit while a submission is in flight.
	ErrBusy = errors.New("booking: submission in progress")
	// ErrAlreadySubmitted is returned by Submit once the form reached Submitted.
	ErrAlreadySubmitted = errors.New("booking: form already submitted")
	// ErrUnknownField is returned by Set for a name that is not a form field.
	ErrUnknownField = errors.New("booking: unknown field")
)

// FormOption configures a Form.
type FormOption func(*Form)

// WithObserver registers fn to be called after every state transition.
// fn runs without the form lock held.
func WithObserver(fn func(from, to State)) FormOption {
	return func(f *Form) { f.observers = append(f.observers, fn) }
}

// Form holds the values, field errors and submission state of one booking form.
type Form struct {
	sub       Submitter
	observers []func(from, to State)

	mu     sync.Mutex
	state  State
	values model.BookingForm
	errs   model.FieldErrors
}

// NewForm returns an Idle form with empty fields. A nil sub accepts every
// valid form immediately.
func NewForm(sub Submitter, opts ...FormOption) *Form {
	f := &Form{sub: sub, errs: model.FieldErrors{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the current submission state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Values returns a copy of the current field values.
func (f *Form) Values() model.BookingForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Errors returns a copy of the current field errors.
func (f *Form) Errors() model.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(model.FieldErrors, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

// Set edits a single field and clears any error shown for it.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case model.FieldName:
		f.values.Name = value
	case model.FieldEmail:
		f.values.Email = value
	case model.FieldGoal:
		f.values.Goal = value
	case model.FieldTimeframe:
		f.values.Timeframe = value
	case model.FieldMessage:
		f.values.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	delete(f.errs, field)
	return nil
}

// Load replaces every field value. Errors are left untouched.
func (f *Form) Load(v model.BookingForm) {
	f.mu.Lock()
	f.values = v
	f.mu.Unlock()
}

// Submit validates the form and, when it is valid, hands it to the submitter.
//
// On validation failure the form stays Idle with its field errors set and
// ErrInvalid is returned. On success the form ends Submitted. When the
// submitter fails or ctx is cancelled the form returns to Idle with its
// values intact and the error is returned wrapped.
func (f *Form) Submit(ctx context.Context) (State, error) {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return StateSubmitting, ErrBusy
	case StateSubmitted:
		f.mu.Unlock()
		return StateSubmitted, ErrAlreadySubmitted
	}

	errs := Validate(f.values)
	f.errs = errs
	if errs.Len() > 0 {
		f.mu.Unlock()
		return StateIdle, ErrInvalid
	}

	values := f.values
	f.state = StateSubmitting
	f.mu.Unlock()
	f.notify(StateIdle, StateSubmitting)

	var err error
	if f.sub != nil {
		err = f.sub.Submit(ctx, values)
	}

	f.mu.Lock()
	if err != nil {
		f.state = StateIdle
		f.mu.Unlock()
		f.notify(StateSubmitting, StateIdle)
		return StateIdle, fmt.Errorf("booking: submit: %w", err)
	}
	f.state = StateSubmitted
	f.mu.Unlock()
	f.notify(StateSubmitting, StateSubmitted)
	return StateSubmitted, nil
}

// Reset returns the form to Idle with empty fields and no errors.
// It returns ErrBusy while a submission is in flight.
func (f *Form) Reset() error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrBusy
	}
	from := f.state
	f.state = StateIdle
	f.values = model.BookingForm{}
	f.errs = model.FieldErrors{}
	f.mu.Unlock()

	if from != StateIdle {
		f.notify(from, StateIdle)
	}
	return nil
}

func (f *Form) notify(from, to State) {
	for _, fn := range f.observers {
		fn(from, to)
	}
}
