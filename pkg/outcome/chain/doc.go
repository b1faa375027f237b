// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of Outcome values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/Try: compose outcome-returning or error-returning functions
// - Map/MapErr: transform the success or failure branch
// - Ensure: trigger side effects without changing the result
// - Via: switch to a new value type (package level, since methods cannot
//   introduce type parameters)
// - Finally/UnwrapOr: reduce to a concrete value
//
// Chain is ideal for small services or tests where lightweight synchronous
// chaining improves readability without introducing channels.
package chain
