package commands

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a new order from the customer checkout
// flow. The order starts pending and unpaid; its total is fixed from the
// line items' unit prices at order time.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	items        []order.LineItem
	orderType    order.OrderType
	deliveryDate *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates and builds the command. Scheduled orders
// must carry a delivery date; urgent orders may omit it.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []order.LineItem,
	orderType order.OrderType,
	deliveryDate *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setOrderType(orderType, deliveryDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the order's line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

// OrderType returns the fulfillment type.
func (c CreateOrderCommand) OrderType() order.OrderType {
	return c.orderType
}

// DeliveryDate returns the requested delivery date, nil for urgent orders.
func (c CreateOrderCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.OrderType, deliveryDate *time.Time) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	if orderType == order.Scheduled && deliveryDate == nil {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	c.orderType = orderType
	c.deliveryDate = deliveryDate
	return nil
}
