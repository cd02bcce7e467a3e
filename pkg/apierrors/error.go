package apierrors

import (
	"strings"

	"todoboard/pkg/translator"
)

// ValidationError collects every violation found in a payload so they
// can be reported together in a single message. Keys are translation
// message ids, kept in the order the checks ran.
type ValidationError struct {
	Keys []string
}

func NewValidationError(keys ...string) *ValidationError {
	return &ValidationError{Keys: keys}
}

// Error implements the error interface using the raw message keys.
func (e *ValidationError) Error() string {
	return strings.Join(e.Keys, ", ")
}

// Localize renders the combined, human-readable message for the
// requested language.
func (e *ValidationError) Localize(lang string) string {
	messages := make([]string, 0, len(e.Keys))
	for _, key := range e.Keys {
		messages = append(messages, translator.Localize(lang, key))
	}
	return strings.Join(messages, ", ")
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Localize(lang, msgKey)
}
