package web

import (
	"html/template"

	"github.com/elchananT/personal-coach-demo-website/internal/model"
)

// PageData is the view model shared by every page.
type PageData struct {
	Content *model.SiteContent
	Meta    model.Meta
	Path    string
	Year    int
	Form    FormView

	// Body is pre-rendered, trusted HTML for document pages.
	Body template.HTML
}

// FormView is what the booking section needs to draw the form or the thank-you panel.
type FormView struct {
	State  string // booking.State.String()
	Values model.BookingForm
	Errors model.FieldErrors
	Notice string // form-level message, e.g. when saving failed
}
