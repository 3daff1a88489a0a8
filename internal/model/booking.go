package model

import "time"

// Booking form field names. They double as HTML input names and JSON keys.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldGoal      = "goal"
	FieldTimeframe = "timeframe"
	FieldMessage   = "message"
)

// BookingForm is what a visitor types into the consultation form.
// Message is optional; every other field is required.
type BookingForm struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Goal      string `json:"goal"`
	Timeframe string `json:"timeframe"`
	Message   string `json:"message"`
}

// FieldErrors maps a field name to a human-readable validation message.
// A field without an entry is valid.
type FieldErrors map[string]string

// Len returns the number of failed fields.
func (e FieldErrors) Len() int { return len(e) }

// Has reports whether field carries a non-empty error.
func (e FieldErrors) Has(field string) bool { return e[field] != "" }

// Get returns the message for field, or "".
func (e FieldErrors) Get(field string) string { return e[field] }

// Booking status values used by staff to triage consultation requests.
const (
	BookingStatusNew       = "new"
	BookingStatusContacted = "contacted"
	BookingStatusScheduled = "scheduled"
	BookingStatusClosed    = "closed"
)

// Booking is a consultation request that passed validation and was accepted.
type Booking struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Goal      string    `json:"goal"`
	Timeframe string    `json:"timeframe"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"` // "new" | "contacted" | "scheduled" | "closed"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBooking copies the submitted form into an unsaved Booking.
func NewBooking(f BookingForm) *Booking {
	return &Booking{
		Name:      f.Name,
		Email:     f.Email,
		Goal:      f.Goal,
		Timeframe: f.Timeframe,
		Message:   f.Message,
	}
}

// BookingListOptions carries filter and pagination parameters for listing bookings.
type BookingListOptions struct {
	// Status filters by booking status. Empty string and "all" return every booking.
	Status string
	Limit  int
	Offset int
}
