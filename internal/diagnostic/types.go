package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"subview-generator/internal/common"
)

// Stable diagnostic codes. Every structural error the pipeline can raise
// uses one of these.
const (
	// CodeMalformedDirective - unparsable directive text, unknown key, or
	// wrong value type.
	CodeMalformedDirective = "MalformedDirective"
	// CodeMissingFromType - the required from_type key is absent.
	CodeMissingFromType = "MissingFromType"
	// CodeUnknownGenericParameter - a free-marked argument names a type
	// parameter not declared on the target struct.
	CodeUnknownGenericParameter = "UnknownGenericParameter"
	// CodeArityMismatch - a declared target type parameter is missing from,
	// or duplicated in, the source reference's argument list.
	CodeArityMismatch = "ArityMismatch"
	// CodeConflictingFieldDirective - contradictory per-field options.
	CodeConflictingFieldDirective = "ConflictingFieldDirective"
	// CodeUnsupportedDeclaration - the directive is attached to a
	// declaration the front end cannot model (non-struct, embedded field).
	CodeUnsupportedDeclaration = "UnsupportedDeclaration"
	// CodeOutputCollision - two targets in one package map to the same
	// generated file name (names differing only in case).
	CodeOutputCollision = "OutputCollision"
)

// Diagnostics holds all diagnostic information for one generation pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Schema names the target struct this relates to (if any).
	Schema string
	// Field names the target field this relates to (if any).
	Field string
	// Pos is the source position of the offending declaration (if known).
	Pos string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, schema, field, pos string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Schema:   schema,
		Field:    field,
		Pos:      pos,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, schema, field, pos string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Schema:   schema,
		Field:    field,
		Pos:      pos,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Pos != "" {
		prefix = append(prefix, d.Pos)
	}

	if d.Schema != "" {
		prefix = append(prefix, "["+d.Schema+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
