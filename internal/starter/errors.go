package starter

import "fmt"

// InvalidNameError is returned for project names npm would not accept.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid project name %q: %s. Name should be in-kebab-case (for npm)", e.Name, e.Reason)
}

// MissingInputError is returned when a required value has no source: it was
// not passed as a flag and the session cannot prompt for it.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required %s: pass it as an argument or run in an interactive terminal", e.Field)
}
