// Package diagnostic provides structured errors and warnings for the
// subview generator.
//
// Key capabilities:
//   - Stable codes for every structural directive error
//   - Schema, field, and source-position context on each entry
//   - Per-schema independence: one schema's errors never affect another's
package diagnostic
