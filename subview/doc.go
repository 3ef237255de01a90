// Package subview is the runtime support package for generated subview
// conversions.
//
// Generated fallible conversions return *MissingFieldError when a required
// source field is unset; callers handle it like any ordinary error.
// ParseConversion classifies conversion functions by reflection, for tests
// and tooling that work with generated entry points.
package subview
