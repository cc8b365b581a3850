package commands

import (
	"errors"
	"strings"

	"freightline/internal/core/domain/model/order"
	"freightline/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOriginIsRequired      = errors.New("origin is required")
	ErrDestinationIsRequired = errors.New("destination is required")
	ErrWeightIsInvalid       = errors.New("weight must be greater than 0")
	ErrItemsAreRequired      = errors.New("at least one item is required")
	ErrCustomerIsRequired    = errors.New("customer contact is required")
)

// CreateOrderCommand represents a shipper's request to register a new
// freight order. The directory service assigns the identifier, order number,
// and pending status.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Rotterdam", "Hamburg", 120,
//	    items, customer, "fragile")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s registered", created.OrderNumber())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	origin      string
	destination string
	weight      float64
	items       []order.Item
	customer    order.Customer
	notes       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new freight order.
// Validates that the route endpoints are present, weight is positive, at
// least one item is listed, and customer contact details were constructed.
func NewCreateOrderCommand(
	origin, destination string,
	weight float64,
	items []order.Item,
	customer order.Customer,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRoute(origin, destination),
		cmd.setWeight(weight),
		cmd.setItems(items),
		cmd.setCustomer(customer),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Origin returns the pickup location.
func (c CreateOrderCommand) Origin() string {
	return c.origin
}

// Destination returns the drop-off location.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

// Weight returns the total shipment weight in kilograms.
func (c CreateOrderCommand) Weight() float64 {
	return c.weight
}

// Items returns the cargo line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Customer returns the customer contact attached to the order.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Notes returns the optional free-text notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setRoute(origin, destination string) error {
	if strings.TrimSpace(origin) == "" {
		return ErrOriginIsRequired
	}
	if strings.TrimSpace(destination) == "" {
		return ErrDestinationIsRequired
	}

	c.origin = origin
	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if customer.Name() == "" {
		return ErrCustomerIsRequired
	}

	c.customer = customer
	return nil
}
