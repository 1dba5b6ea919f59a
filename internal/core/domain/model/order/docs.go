// Package order contains the Order aggregate of the catering workflow:
// the lifecycle status machine, the append-only payment ledger with its
// derived payment status, and the write-once schedule assignment.
//
// The aggregate is the single authority for the workflow invariants; the
// application layer loads it under a row lock, calls one mutating method,
// and persists the touched field. Nothing outside this package derives a
// payment status or validates a transition.
package order
