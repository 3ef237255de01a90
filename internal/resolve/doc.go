// Package resolve turns an unresolved ConversionSpec into the inputs the
// generator consumes: a SourceRef with Free/Bound generic arguments and an
// ordered list of field bindings.
//
// Resolution is schema-blind about the source type. It never checks that a
// named source field exists or that its type is actually optional when
// unpack is requested; those mismatches surface when the emitted code is
// compiled. What it does check, strictly:
//   - the from_type grammar: Name or Name<Arg, Arg, ...>, where an Arg is
//     either #Ident (free) or an opaque type expression (bound)
//   - every free argument names a type parameter declared on the target
//   - every declared target type parameter appears as a free argument
//     exactly once
package resolve
