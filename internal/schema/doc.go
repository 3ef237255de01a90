// Package schema defines the in-memory model shared by the subview pipeline.
//
// The model is deliberately shallow: a target struct is fully known (name,
// type parameters, ordered fields), while the source struct is known only by
// the reference text in its directive. Field types and type-parameter
// constraints are opaque text copied verbatim into generated code; the
// pipeline never inspects their structure.
//
// Key types:
//   - RecordSchema: one annotated target struct as extracted by the front end
//   - ConversionSpec: the parsed, unresolved directive set for one schema
//   - SourceRef / GenericArg: the resolved source reference with Free/Bound
//     generic arguments
//   - Binding: one resolved target-field-to-source-field move
package schema
