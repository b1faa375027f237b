// Package plain provides helpers over ordinary (T, error) pairs for code
// that does not adopt the Outcome container. The two styles coexist: an
// Outcome converts to a pair via Get, and a pair converts back via
// outcome.Do, so neither side touches the other's internals.
package plain
