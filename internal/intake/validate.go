package intake

import (
	"net/mail"
	"strings"
)

// FieldError is one rejected form field, serialized into the 400
// response body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateSubmitForm checks the required submission fields. Values are
// trimmed before the presence check; the email must parse as an RFC
// 5322 address. A nil return means the form is acceptable.
func ValidateSubmitForm(get func(key string) string) []FieldError {
	var errs []FieldError

	require := func(field, message string) string {
		v := strings.TrimSpace(get(field))
		if v == "" {
			errs = append(errs, FieldError{Field: field, Message: message})
		}
		return v
	}

	require("reference", "Reference is required")
	require("fullname", "Full name is required")
	email := strings.TrimSpace(get("email"))
	if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "Valid email is required"})
	}
	require("phone", "Phone number is required")
	require("dob", "Date of birth is required")
	require("arrival", "Date of arrival is required")

	return errs
}
