package services

import (
	"mime/multipart"
	"strings"
)

// IsBlank reports whether the input is empty after trimming whitespace.
// Blank search filters are ignored rather than rejected, so this is a
// predicate instead of a validation that fails.
func IsBlank(input string) bool {
	return strings.TrimSpace(input) == ""
}

// ValidateInput ensures none of the inputs is blank.
func ValidateInput(inputs ...string) error {
	for _, input := range inputs {
		if IsBlank(input) {
			return NewInputError("The input cannot be empty")
		}
	}
	return nil
}

// ValidateImage ensures a file payload was supplied with the request.
func ValidateImage(file *multipart.FileHeader) error {
	if file == nil {
		return NewInputError("The input cannot be empty")
	}
	return nil
}
