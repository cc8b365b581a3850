package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrCarrierAlreadyAssigned is returned when accepting an order that
	// already has a carrier.
	ErrCarrierAlreadyAssigned = errors.New("order already has a carrier assigned")
)

// Item is a line item of an order: a named piece of cargo with a count and
// a per-unit weight in kilograms. Items are immutable value objects; their
// position in the order's item list is display order only.
type Item struct {
	name       string
	quantity   int
	unitWeight float64
}

// NewItem creates a validated line item. Name must be non-empty, quantity and
// unit weight must be positive.
func NewItem(name string, quantity int, unitWeight float64) (Item, error) {
	if strings.TrimSpace(name) == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitWeight <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item unit weight",
			fmt.Errorf("%g is not greater than 0", unitWeight))
	}
	return Item{name: name, quantity: quantity, unitWeight: unitWeight}, nil
}

// Name returns the item's display name.
func (i Item) Name() string { return i.name }

// Quantity returns the number of units of this item.
func (i Item) Quantity() int { return i.quantity }

// UnitWeight returns the weight of a single unit in kilograms.
func (i Item) UnitWeight() float64 { return i.unitWeight }

// Customer holds the contact details attached to an order.
// All three fields are required at creation time.
type Customer struct {
	name  string
	email string
	phone string
}

// NewCustomer creates a validated customer contact. Name, email, and phone
// are all required.
func NewCustomer(name, email, phone string) (Customer, error) {
	if strings.TrimSpace(name) == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}
	if strings.TrimSpace(email) == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer email")
	}
	if strings.TrimSpace(phone) == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer phone")
	}
	return Customer{name: name, email: email, phone: phone}, nil
}

// Name returns the customer's name.
func (c Customer) Name() string { return c.name }

// Email returns the customer's email address.
func (c Customer) Email() string { return c.email }

// Phone returns the customer's phone number.
func (c Customer) Phone() string { return c.phone }

// Timeline records when an order reached each lifecycle status. Each pointer
// field is populated exactly once, when the corresponding status is first
// reached, and is never used to derive the current status. It exists purely
// to render a history.
type Timeline struct {
	CreatedAt   time.Time
	AcceptedAt  *time.Time
	PickedUpAt  *time.Time
	InTransitAt *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
	UpdatedAt   time.Time
}

// stamped returns a copy of the timeline with the timestamp for the given
// status recorded, if it was not recorded before, and UpdatedAt advanced.
func (t Timeline) stamped(s Status, at time.Time) Timeline {
	next := t
	next.UpdatedAt = at

	set := func(field **time.Time) {
		if *field == nil {
			v := at
			*field = &v
		}
	}

	switch s {
	case Accepted:
		set(&next.AcceptedAt)
	case PickedUp:
		set(&next.PickedUpAt)
	case InTransit:
		set(&next.InTransitAt)
	case Delivered:
		set(&next.DeliveredAt)
	case Cancelled:
		set(&next.CancelledAt)
	default:
	}
	return next
}

// Order represents a freight shipment request tying a shipper's cargo to a
// carrier for transport. It is the aggregate root of the order lifecycle from
// creation through acceptance to delivery or cancellation.
//
// Order follows these invariants:
//   - Must have valid order and shipper identifiers
//   - Origin and destination must be non-empty
//   - Weight must be positive (kilograms)
//   - Must carry at least one validated line item and complete customer contact
//   - Status transitions follow the role-gated policy, see RequestTransition
//   - Can only be created through NewOrder or RestoreOrder
//
// Orders are treated as immutable values by the console core: a transition
// never mutates the receiver, it produces a new Order. This makes concurrent
// in-flight requests for different orders safe without locking.
type Order struct {
	id                 kernel.UUID
	orderNumber        string
	shipperID          kernel.UUID
	carrierID          *kernel.UUID
	origin             string
	destination        string
	weight             float64
	items              []Item
	customer           Customer
	notes              string
	cancellationReason string
	trackingNumber     string
	estimatedDelivery  *time.Time
	status             Status
	timeline           Timeline

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with a freshly generated
// order number. This is how shippers create orders; the directory service
// assigns tracking data later, when a carrier accepts.
//
// Parameters:
//   - id: unique identifier for the order
//   - shipperID: identifier of the shipper account creating the order
//   - origin, destination: free-text pickup and delivery locations
//   - weight: total cargo weight in kilograms (must be positive)
//   - items: line items (at least one, each already validated by NewItem)
//   - customer: contact details (validated by NewCustomer)
//   - notes: optional free-text notes
//   - createdAt: creation timestamp recorded in the timeline
//
// Returns a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	shipperID kernel.UUID,
	origin string,
	destination string,
	weight float64,
	items []Item,
	customer Customer,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		orderNumber:   kernel.NewOrderNumber(),
		status:        Pending,
		notes:         notes,
		timeline:      Timeline{CreatedAt: createdAt, UpdatedAt: createdAt},
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShipperID(shipperID),
		o.setRoute(origin, destination),
		o.setWeight(weight),
		o.setItems(items),
		o.setCustomer(customer),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries every persisted attribute needed to reconstruct
// an Order from the directory service or a database row.
type RestoreOrderParams struct {
	ID                 kernel.UUID
	OrderNumber        string
	ShipperID          kernel.UUID
	CarrierID          *kernel.UUID
	Origin             string
	Destination        string
	Weight             float64
	Items              []Item
	Customer           Customer
	Notes              string
	CancellationReason string
	TrackingNumber     string
	EstimatedDelivery  *time.Time
	Status             Status
	Timeline           Timeline
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// accepts any valid status and the service-assigned fields (order number,
// tracking number, estimated delivery). It is used at the service boundary and
// by repositories; data integrity is still validated.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{
		orderNumber:        p.OrderNumber,
		notes:              p.Notes,
		cancellationReason: p.CancellationReason,
		trackingNumber:     p.TrackingNumber,
		estimatedDelivery:  p.EstimatedDelivery,
		timeline:           p.Timeline,
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setShipperID(p.ShipperID),
		o.setRoute(p.Origin, p.Destination),
		o.setWeight(p.Weight),
		o.setItems(p.Items),
		o.setCustomer(p.Customer),
		o.setStatus(p.Status),
	); err != nil {
		return nil, err
	}

	if p.CarrierID != nil {
		if err := p.CarrierID.Validate(); err != nil {
			return nil, err
		}
		carrierID := *p.CarrierID
		o.carrierID = &carrierID
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing order number ("ORD-XXXXXXXX").
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// ShipperID returns the identifier of the shipper that created the order.
func (o *Order) ShipperID() kernel.UUID {
	return o.shipperID
}

// Carrier returns the assigned carrier's ID, or nil if no carrier accepted
// the order yet.
func (o *Order) Carrier() *kernel.UUID {
	return o.carrierID
}

// CarrierAssigned reports whether a carrier has accepted the order.
func (o *Order) CarrierAssigned() bool {
	return o.carrierID != nil
}

// Origin returns the free-text pickup location.
func (o *Order) Origin() string {
	return o.origin
}

// Destination returns the free-text delivery location.
func (o *Order) Destination() string {
	return o.destination
}

// Weight returns the total cargo weight in kilograms.
func (o *Order) Weight() float64 {
	return o.weight
}

// Items returns a copy of the order's line items in display order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Customer returns the customer contact attached to the order.
func (o *Order) Customer() Customer {
	return o.customer
}

// Notes returns the free-text notes attached to the order.
func (o *Order) Notes() string {
	return o.notes
}

// CancellationReason returns the reason recorded when the order was
// cancelled, or an empty string.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// TrackingNumber returns the service-assigned tracking number, or an empty
// string before a carrier accepts the order. Display only.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// EstimatedDelivery returns the service-assigned delivery estimate, or nil.
// Display only.
func (o *Order) EstimatedDelivery() *time.Time {
	return o.estimatedDelivery
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Timeline returns the recorded lifecycle timestamps.
func (o *Order) Timeline() Timeline {
	return o.timeline
}

// Accept assigns a carrier to a pending order, producing a new Order in
// Accepted status with the given tracking number. Returns
// ErrCarrierAlreadyAssigned when another carrier got there first; the
// directory service surfaces that condition as a conflict.
func (o *Order) Accept(carrierID kernel.UUID, trackingNumber string, at time.Time) (*Order, error) {
	if err := carrierID.Validate(); err != nil {
		return nil, err
	}
	if o.carrierID != nil {
		return nil, ErrCarrierAlreadyAssigned
	}
	if o.status != Pending {
		return nil, fmt.Errorf("%w: cannot accept order in status %s", ErrIllegalTransition, o.status)
	}

	next := o.clone()
	next.carrierID = &carrierID
	next.trackingNumber = trackingNumber
	next.status = Accepted
	next.timeline = o.timeline.stamped(Accepted, at)
	return next, nil
}

// clone returns a copy of the order with its own items slice.
func (o *Order) clone() *Order {
	next := *o
	next.items = make([]Item, len(o.items))
	copy(next.items, o.items)
	if o.carrierID != nil {
		carrierID := *o.carrierID
		next.carrierID = &carrierID
	}
	if o.estimatedDelivery != nil {
		estimated := *o.estimatedDelivery
		next.estimatedDelivery = &estimated
	}
	return &next
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setShipperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("shipper: %w", err)
	}
	o.shipperID = id
	return nil
}

func (o *Order) setRoute(origin, destination string) error {
	if strings.TrimSpace(origin) == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if strings.TrimSpace(destination) == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	o.origin = origin
	o.destination = destination
	return nil
}

func (o *Order) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%g is not greater than 0", weight))
	}
	o.weight = weight
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if customer == (Customer{}) {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
