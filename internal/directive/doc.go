// Package directive parses the raw directive texts attached to a target
// struct into an unresolved ConversionSpec.
//
// Two surfaces are recognized:
//   - the struct-level "//subview:" comment line: space-separated key=value
//     pairs, values optionally double-quoted. Keys: from_type (required),
//     unpack (bool, default false), make_refs (bool, default false; the
//     conversion borrows from the source instead of copying it).
//   - the per-field `subview` struct tag: comma-separated key=value options.
//     Keys: rename_from (identifier), unpack (bool, overriding the
//     struct-level flag for that field only).
//
// Parsing does not attempt recovery. Any unknown key, duplicate key, or
// malformed value is a hard failure and generation for the whole schema is
// abandoned by the caller.
package directive
