package services

import (
	"regexp"
	"strings"
)

var (
	nameRegex    = regexp.MustCompile(`^[A-Za-z ]+$`)
	digitRegex   = regexp.MustCompile(`[0-9]`)
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	upperRegex   = regexp.MustCompile(`[A-Z]`)
	specialRegex = regexp.MustCompile(`[!@#$%^&*()]`)
)

// ValidateUser runs the account rule set: name first, then password, then
// email. The first failing rule is the error the caller sees.
func ValidateUser(name, email, password, password2 string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validatePassword(password, password2); err != nil {
		return err
	}
	return validateEmail(email)
}

func validateName(name string) error {
	if name == "" {
		return NewInputError("Name cannot be empty")
	}

	if len(name) < 2 {
		return NewInputError("Name must be at least 2 characters long")
	}

	if !nameRegex.MatchString(name) {
		return NewInputError("Name can only contain letters and spaces")
	}

	return nil
}

// validatePassword checks the confirmation before anything else, so a
// mismatch always surfaces as its own error.
func validatePassword(password, password2 string) error {
	if password != password2 {
		return NewInputError("Passwords should match")
	}

	if password == "" {
		return NewInputError("Password cannot be empty")
	}

	if len(password) < 8 {
		return NewInputError("Password must be at least 8 characters long")
	}

	if !digitRegex.MatchString(password) {
		return NewInputError("Password must contain at least one digit")
	}

	if !lowerRegex.MatchString(password) || !upperRegex.MatchString(password) {
		return NewInputError("Password must contain at least one uppercase and one lowercase letter")
	}

	if !specialRegex.MatchString(password) {
		return NewInputError("Password must contain at least one special character (!@#$%^&*())")
	}

	return nil
}

// validateEmail requires exactly one '@' and bounded local and domain
// parts. Nothing beyond that is checked; "a@b" is a valid address here.
func validateEmail(email string) error {
	if email == "" {
		return NewInputError("Email cannot be empty")
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return NewInputError("Email must contain one '@' character")
	}

	localPart := parts[0]
	domainPart := parts[1]

	if localPart == "" || len(localPart) > 64 {
		return NewInputError("Local part of email must be between 1 and 64 characters")
	}

	if domainPart == "" || len(domainPart) > 255 {
		return NewInputError("Domain part of email must be between 1 and 255 characters")
	}

	return nil
}
