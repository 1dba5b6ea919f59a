package order

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// Status represents the lifecycle state of a catering order.
// It implements a strictly linear state machine:
//
//	pending ──> confirmed ──> preparing ──> ready ──> delivered
//	    │            │             │          │
//	    └────────────┴─────────────┴──────────┴──> cancelled
//
// Transitions advance exactly one step along the chain, or jump to
// cancelled from any non-terminal state. Delivered and cancelled are
// terminal. Payment gates on confirmed and delivered are enforced by the
// Order aggregate, which knows the paid amount; Status only validates the
// shape of the move.
type Status int

const (
	// Unknown catches uninitialized Status values; it is never valid.
	Unknown Status = iota

	// Pending is the initial status at checkout.
	Pending

	// Confirmed means the kitchen accepted the order. Requires the
	// minimum upfront payment for the order type.
	Confirmed

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means the order awaits handover or delivery.
	Ready

	// Delivered is terminal and requires the order to be fully paid.
	Delivered

	// Cancelled is terminal and reachable from any non-terminal status.
	Cancelled
)

// statusStrings holds the single canonical (lowercase) representation of
// each status. These are the values stored and sent on the wire.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// statusLabels maps accepted input labels to statuses. Besides the
// canonical names it admits the display labels staff screens send
// ("Accepted" for confirmed). Lookup is case-insensitive; anything absent
// from the table is rejected rather than coerced.
func statusLabels() map[string]Status {
	return map[string]Status{
		"pending":   Pending,
		"accepted":  Confirmed,
		"confirmed": Confirmed,
		"preparing": Preparing,
		"ready":     Ready,
		"delivered": Delivered,
		"cancelled": Cancelled,
	}
}

// StatusFromLabel normalizes a caller-supplied status label through the
// closed lookup table. Unrecognized labels fail with a validation error;
// there is deliberately no lower-case-and-hope fallback.
func StatusFromLabel(label string) (Status, error) {
	s, ok := statusLabels()[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a recognized status label", label))
	}
	return s, nil
}

// StatusFromString parses the canonical lowercase representation, the one
// String produces and the database stores. Display aliases are not accepted
// here; a stored value that fails this parse indicates corrupt data.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a canonical status", s))
}

// Validate reports whether the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical lowercase name of the status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates a move from s to target and returns the new
// status. Permitted moves are exactly one step forward along the chain, or
// to cancelled from any non-terminal status. Everything else, including
// backward moves and skipped steps, is rejected.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, errs.NewInvalidStateErrorWithCause(s.String(), target.String(),
			fmt.Errorf("%s is a terminal status", s))
	}

	if target == Cancelled {
		return Cancelled, nil
	}

	if target != s+1 || target == Pending {
		return Unknown, errs.NewInvalidStateError(s.String(), target.String())
	}

	return target, nil
}
