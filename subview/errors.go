package subview

import "fmt"

// MissingFieldError reports the first required field a fallible conversion
// found unset, in target field declaration order. Later fields may be unset
// too; the conversion stops at the first one.
type MissingFieldError struct {
	// Schema names the source type the conversion reads from, as written
	// in its from_type directive.
	Schema string
	// Field names the target field that could not be populated.
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %s of %s is not set", e.Field, e.Schema)
}
