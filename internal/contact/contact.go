// Package contact accepts messages posted through the page's contact form.
package contact

import (
	"fmt"
	"html"
	"net/mail"
	"net/url"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

const (
	MaxNameLen    = 100
	MaxMessageLen = 5000
)

// Form field names. They double as the HTML input ids.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Input is the raw form payload after trimming.
type Input struct {
	Name    string
	Email   string
	Message string
}

// Submission is an accepted, sanitized message.
type Submission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	RemoteIP   string    `json:"remote_ip,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// ValidationError maps field names to i18n message keys.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("contact: invalid fields: %s", strings.Join(keys, ", "))
}

var stripAll = bluemonday.StrictPolicy()

// Parse extracts the form fields.
func Parse(values url.Values) Input {
	return Input{
		Name:    strings.TrimSpace(values.Get(FieldName)),
		Email:   strings.TrimSpace(values.Get(FieldEmail)),
		Message: strings.TrimSpace(values.Get(FieldMessage)),
	}
}

// Values returns the input as form values, used to refill the form after errors.
func (in Input) Values() map[string]string {
	return map[string]string{
		FieldName:    in.Name,
		FieldEmail:   in.Email,
		FieldMessage: in.Message,
	}
}

// Validate returns a *ValidationError when any field is missing or malformed.
func (in Input) Validate() error {
	fields := map[string]string{}
	switch {
	case in.Name == "":
		fields[FieldName] = "contact.error.name.required"
	case utf8.RuneCountInString(in.Name) > MaxNameLen:
		fields[FieldName] = "contact.error.name.length"
	}
	switch {
	case in.Email == "":
		fields[FieldEmail] = "contact.error.email.required"
	case !validEmail(in.Email):
		fields[FieldEmail] = "contact.error.email.invalid"
	}
	switch {
	case in.Message == "":
		fields[FieldMessage] = "contact.error.message.required"
	case utf8.RuneCountInString(in.Message) > MaxMessageLen:
		fields[FieldMessage] = "contact.error.message.length"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// reject display-name forms like "Jane <jane@example.com>"
	if addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && at < len(s)-1
}

// Accept sanitizes the input, validates what is left and builds a submission.
// Input that is only markup fails as missing.
func Accept(in Input, remoteIP string, now time.Time) (Submission, error) {
	clean := Input{
		Name:    sanitize(in.Name),
		Email:   in.Email,
		Message: sanitize(in.Message),
	}
	if err := clean.Validate(); err != nil {
		return Submission{}, err
	}
	return Submission{
		ID:         uuid.NewString(),
		Name:       clean.Name,
		Email:      clean.Email,
		Message:    clean.Message,
		RemoteIP:   remoteIP,
		ReceivedAt: now.UTC(),
	}, nil
}

// sanitize strips markup; bluemonday escapes what remains, so undo that for storage.
func sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripAll.Sanitize(s)))
}
