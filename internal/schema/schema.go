// Package schema implements declarative record validation: per-field
// check chains composed into whole-record rule tables shared by every
// caller that needs to validate the same entity.
package schema

import (
	"fmt"
	"strings"
	"time"
)

// Issue is a single validation failure on one field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries the ordered list of issues produced by one Validate
// call. At most one issue is recorded per field.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		fields = append(fields, issue.Field)
	}
	return fmt.Sprintf("validation failed on %d field(s): %s", len(e.Issues), strings.Join(fields, ", "))
}

// Check validates and normalizes a single value. The returned value
// replaces the input for the next check in the chain. A non-empty
// message marks the value invalid and stops the chain for its field.
// Checks must be pure: re-running a check on its own output yields the
// same value and no message.
type Check func(v any, now time.Time) (any, string)

// Field is one row of a rule table.
type Field struct {
	Name     string
	Optional bool
	Checks   []Check
}

// Schema is an ordered rule table for one entity.
type Schema struct {
	fields []Field
}

// New builds a Schema from an ordered field list.
func New(fields ...Field) *Schema {
	return &Schema{fields: fields}
}

// Validate applies every field's check chain to raw. Checks on one
// field stop at its first failure, but validation continues across
// fields so the caller gets the complete issue list in one pass.
// Unknown keys in raw are ignored. Optional fields whose raw value is
// missing, nil or an empty string are skipped entirely.
//
// now is captured once by the caller and shared by every date/range
// window in the table, so a single call never observes two different
// clock readings.
//
// On success the returned map holds the normalized value for every
// field present in the table.
func (s *Schema) Validate(raw map[string]any, now time.Time) (map[string]any, error) {
	normalized := make(map[string]any, len(s.fields))
	var issues []Issue

	for _, f := range s.fields {
		v, present := raw[f.Name]
		if !present || isEmpty(v) {
			if !f.Optional {
				issues = append(issues, Issue{Field: f.Name, Message: "is required"})
			}
			continue
		}

		failed := false
		for _, check := range f.Checks {
			var msg string
			v, msg = check(v, now)
			if msg != "" {
				issues = append(issues, Issue{Field: f.Name, Message: msg})
				failed = true
				break
			}
		}
		if !failed {
			normalized[f.Name] = v
		}
	}

	if len(issues) > 0 {
		return nil, &Error{Issues: issues}
	}
	return normalized, nil
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
