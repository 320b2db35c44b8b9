package engine

import "fmt"

// ValidationError reports a form field that is present but unusable.
// Blank fields are not errors; adds with blank fields are simply skipped.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
