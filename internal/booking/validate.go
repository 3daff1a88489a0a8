// Package booking implements the consultation form: field validation and the
// Idle -> Submitting -> Submitted lifecycle of a single form instance.
package booking

import (
	"regexp"
	"strings"

	"github.com/elchananT/personal-coach-demo-website/internal/model"
)

// User-facing validation messages. They are shown verbatim next to the input.
const (
	MsgNameRequired      = "Name is required"
	MsgEmailRequired     = "Email is required"
	MsgEmailInvalid      = "Please enter a valid email"
	MsgGoalRequired      = "Please tell us your main goal"
	MsgTimeframeRequired = "Please select your timeframe"
)

// emailPattern is a shape check only: something@something.something with no spaces.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the required fields of f and returns the failed ones.
// The result is never nil; an empty map means the form is valid.
func Validate(f model.BookingForm) model.FieldErrors {
	errs := model.FieldErrors{}

	if strings.TrimSpace(f.Name) == "" {
		errs[model.FieldName] = MsgNameRequired
	}

	if strings.TrimSpace(f.Email) == "" {
		errs[model.FieldEmail] = MsgEmailRequired
	} else if !emailPattern.MatchString(f.Email) {
		errs[model.FieldEmail] = MsgEmailInvalid
	}

	if strings.TrimSpace(f.Goal) == "" {
		errs[model.FieldGoal] = MsgGoalRequired
	}

	if strings.TrimSpace(f.Timeframe) == "" {
		errs[model.FieldTimeframe] = MsgTimeframeRequired
	}

	return errs
}
