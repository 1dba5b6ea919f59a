package order

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// OrderType distinguishes how an order is fulfilled and which upfront
// payment threshold gates its confirmation. Fixed at creation.
type OrderType int

const (
	OrderTypeUnknown OrderType = iota

	// Urgent orders are fulfilled as soon as possible and must be fully
	// paid before confirmation.
	Urgent

	// Scheduled orders carry a delivery date and confirm once 40% of the
	// total is paid.
	Scheduled
)

func orderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		Urgent:    "urgent",
		Scheduled: "scheduled",
	}
}

// OrderTypeFromString parses the wire representation of an order type.
func OrderTypeFromString(s string) (OrderType, error) {
	for typ, str := range orderTypeStrings() {
		if str == strings.ToLower(strings.TrimSpace(s)) {
			return typ, nil
		}
	}
	return OrderTypeUnknown, errs.NewValueIsInvalidErrorWithCause("orderType",
		fmt.Errorf("%q is not a recognized order type", s))
}

// String returns the canonical lowercase name of the order type.
func (t OrderType) String() string {
	if str, ok := orderTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Validate reports whether the type is one of the defined values.
func (t OrderType) Validate() error {
	if _, ok := orderTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderType",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// UpfrontPercent returns the minimum share of the total, in percent, that
// must be paid before the order may be confirmed.
func (t OrderType) UpfrontPercent() int64 {
	if t == Scheduled {
		return 40
	}
	return 100
}
