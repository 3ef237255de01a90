// Package plan runs the per-schema generation pipeline and fans it out
// across schemas.
//
// Pipeline, strictly linear per schema:
//  1. Parse directives → unresolved ConversionSpec
//  2. Resolve the source reference (free/bound generic arguments)
//  3. Bind fields (rename-or-identity plus effective unpack flag)
//  4. Build and render the artifact
//
// Any error diagnostic aborts the pipeline for that schema only; no partial
// artifact is ever produced. Each schema's pass is a pure function of its
// own declaration and directives, so GenerateAll schedules passes
// concurrently without coordination.
package plan
