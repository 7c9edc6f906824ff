package validation

import (
	"sort"
	"strings"
)

// NonFieldErrors is the key used for errors that are not tied to a single field.
const NonFieldErrors = "non_field_errors"

// Errors collects validation messages keyed by JSON field name.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Merge copies every message of other into e.
func (e Errors) Merge(other Errors) {
	for field, msgs := range other {
		e[field] = append(e[field], msgs...)
	}
}

// Err returns e as an error, or nil when no messages were collected.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns a single-field error.
func Field(field, msg string) Errors {
	return Errors{field: {msg}}
}
