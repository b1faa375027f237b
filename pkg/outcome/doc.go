// Package outcome provides a two-variant container for success-or-failure
// values and combinators to transform and chain them without threading
// errors through control flow.
//
// Construction:
// - Success/Failure: build the two variants directly
// - Do/Capture0/Capture/Capture2: capture a fallible call or wrap a function
//
// Transformation:
// - Map/MapErr/AndThen: package-level generics; each is a capture boundary
//   that converts panics from the supplied function into a Failure
//
// Extraction:
// - Unwrap/UnwrapOr/Get: leave the container; only Unwrap on a Failure
//   re-raises the held error
//
// Suspension-capable counterparts live in the future subpackage; fluent
// chaining in chain; channel pipelines in pipe; plain (T, error) helpers in
// plain.
package outcome
