package clinical

import "fmt"

// ValidationError reports a malformed or out-of-range input field.
// Field is the JSON path of the offending value, e.g. "profile.ckdStage".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// WithPrefix returns a copy of e whose field path is nested under prefix.
func (e *ValidationError) WithPrefix(prefix string) *ValidationError {
	if prefix == "" {
		return e
	}
	field := prefix
	if e.Field != "" {
		field = prefix + "." + e.Field
	}
	return &ValidationError{Field: field, Message: e.Message}
}

// NotFoundError reports a reference to a food or profile that does not exist.
type NotFoundError struct {
	Resource string
	ID       int64
	Message  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Resource, e.ID, e.Message)
}
