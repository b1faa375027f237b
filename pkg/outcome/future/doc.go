// Package future provides the suspension-capable counterparts of the outcome
// combinators. A Future resolves exactly once, on its own goroutine, and is
// awaited with a context.
//
// Common usage:
// - Go/Resolve: launch a fallible function or lift a ready Outcome
// - Map/AndThen: transform a Future's success branch without blocking
// - Capture: wrap a fallible function into one returning a Future
// - Await/TryGet/Done: consume the resolution
//
// No scheduler is implemented; futures are plain goroutines and channels, and
// ordering beyond normal scheduler fairness is not guaranteed.
package future
