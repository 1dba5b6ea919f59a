package order

import (
	"fmt"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"LineItem must be created via NewLineItem constructor")

// LineItem is one position of an order: a menu item reference, a quantity,
// and the unit price captured at order time. Prices are frozen here so
// later menu edits never change an existing order's total.
type LineItem struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money

	isConstructed bool
}

// NewLineItem creates a validated line item. Quantity must be positive and
// the unit price greater than zero.
func NewLineItem(menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (LineItem, error) {
	if err := menuItemID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !unitPrice.IsPositive() {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}

	return LineItem{
		menuItemID:    menuItemID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the referenced menu item.
func (li LineItem) MenuItemID() kernel.UUID {
	return li.menuItemID
}

// Quantity returns the ordered count.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the per-unit price at order time.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Subtotal returns unit price times quantity.
func (li LineItem) Subtotal() kernel.Money {
	return li.unitPrice.MulInt(int64(li.quantity))
}
