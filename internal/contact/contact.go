// Package contact implements the contact form: binding, validation and the
// one-shot acknowledgement. Messages are never stored or delivered.
package contact

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Submission is the contact form payload.
type Submission struct {
	Name    string `form:"name" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email,max=320"`
	Subject string `form:"subject" binding:"required,max=300"`
	Message string `form:"message" binding:"required,max=10000"`
}

// Normalize trims surrounding whitespace so blank fields fail "required".
func (s *Submission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)
}

// Acknowledgement is the notification shown after a successful submit.
type Acknowledgement struct {
	Title        string
	Body         string
	DismissAfter time.Duration
}

// DismissMillis is DismissAfter in milliseconds, for the page script.
func (a Acknowledgement) DismissMillis() int64 { return a.DismissAfter.Milliseconds() }

// DefaultAcknowledgement is the fixed text shown after every submit.
var DefaultAcknowledgement = Acknowledgement{
	Title:        "Message sent!",
	Body:         "Thank you for reaching out. I'll get back to you soon.",
	DismissAfter: 4 * time.Second,
}

// Form is the view model of the contact form.
type Form struct {
	Values Submission
	Errors map[string]string
}

// Empty returns a cleared form.
func Empty() Form { return Form{} }

// HasErrors reports whether any field failed validation.
func (f Form) HasErrors() bool { return len(f.Errors) > 0 }

// Result is the outcome of one submission.
type Result struct {
	Form Form
	Ack  *Acknowledgement
}

// Accepted reports whether the submission produced an acknowledgement.
func (r Result) Accepted() bool { return r.Ack != nil }

// Handler turns a bound submission into a Result.
type Handler struct {
	ack Acknowledgement
}

// NewHandler returns a handler that acknowledges with ack.
func NewHandler(ack Acknowledgement) *Handler {
	return &Handler{ack: ack}
}

// Submit interprets the outcome of binding sub. bindErr is the error
// returned by the binder, nil when every field was valid. On success the
// returned form is empty and carries exactly one acknowledgement; on failure
// the submitted values are kept and no acknowledgement is produced.
func (h *Handler) Submit(sub Submission, bindErr error) Result {
	if bindErr != nil {
		return Result{Form: Form{Values: sub, Errors: FieldErrors(bindErr)}}
	}
	ack := h.ack
	return Result{Form: Empty(), Ack: &ack}
}

var fieldNames = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Subject": "subject",
	"Message": "message",
}

// FieldErrors maps a binding error to per-field messages keyed by form name.
// Errors that are not validation errors are reported under "form".
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": "The form could not be read. Please try again."}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name, ok := fieldNames[fe.Field()]
		if !ok {
			name = strings.ToLower(fe.Field())
		}
		if _, dup := out[name]; dup {
			continue
		}
		out[name] = message(name, fe.Tag())
	}
	return out
}

func message(field, tag string) string {
	switch tag {
	case "required":
		return "Please fill in your " + field + "."
	case "email":
		return "Please enter a valid email address."
	case "max":
		return "Your " + field + " is too long."
	default:
		return "Please check your " + field + "."
	}
}
