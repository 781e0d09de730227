// Package validation holds the client-side validation rules for the login
// form.
package validation

import "regexp"

// EmailRegex matches a syntactically valid email address.
var EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// LoginForm carries the raw login form input.
type LoginForm struct {
	Email        string
	Password     string
	ReferralCode string
}

// ValidateLogin checks the login form and returns one error per failed
// field. An empty result means the form is valid. The referral code is
// optional and unconstrained.
func ValidateLogin(form LoginForm) []FieldError {
	var errs []FieldError

	switch {
	case form.Email == "":
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	case !EmailRegex.MatchString(form.Email):
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email address"})
	}

	if form.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	}

	return errs
}
