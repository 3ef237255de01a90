// Package gen emits deterministic conversion code for resolved subview
// schemas.
//
// Generation uses text/template + go/format for readable output. Each
// schema yields exactly one file in the target struct's own package,
// containing either:
//   - an infallible constructor func(Source) Target, or
//   - a fallible constructor func(Source) (Target, error) that nil-checks
//     every unpack field in target declaration order and returns a
//     *subview.MissingFieldError for the first one found unset.
//
// With make_refs the constructor takes *Source instead and assigns pointers
// into it, so the source is borrowed rather than copied.
//
// The emitter is the only stage that knows the host language. Everything it
// needs is carried in the Artifact, so a different back end could render the
// same artifact for another host.
package gen
