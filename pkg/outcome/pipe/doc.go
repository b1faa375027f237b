// Package pipe provides channel-lifted combinators for concurrent processing
// of Outcome streams. It is designed for simple fan-out/fan-in flows.
//
// Common usage:
// - Source/Collect/First: move between slices and channels
// - MapStage/TryStage/AndThenStage/MapErrStage/TeeStage: lift the outcome
//   combinators into pipeline stages
// - Run/RunWith: execute a stage over an input channel with a fixed number
//   of lines; RunWith can drain unprocessed inputs as cancellation failures
// - Buffer: unbounded FIFO decoupling stage
// - Finally: reduce Outcome[In] to Out on completion
package pipe
