// Package orderrepo persists order aggregates for the directory service
// using GORM. It handles the conversion between domain entities and their
// relational representation, with line items stored in a child table.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by shipper, carrier, and status for the listing queries; ordering
// is always newest-first on created_at.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber        string     `gorm:"uniqueIndex;size:16"`
	ShipperID          uuid.UUID  `gorm:"type:uuid;index"`
	CarrierID          *uuid.UUID `gorm:"type:uuid;index"`
	Origin             string
	Destination        string
	Weight             float64
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	Notes              string
	CancellationReason string
	TrackingNumber     string `gorm:"size:16"`
	EstimatedDelivery  *time.Time
	Status             int       `gorm:"index"`
	CreatedAt          time.Time `gorm:"index"`
	AcceptedAt         *time.Time
	PickedUpAt         *time.Time
	InTransitAt        *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	UpdatedAt          time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one cargo line item of an order. Position keeps
// the shipper's display order stable across reads.
type OrderItemDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Position   int
	Name       string
	Quantity   int
	UnitWeight float64
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, including line items.
func fromDomain(aggregate *order.Order) OrderDTO {
	var carrierID *uuid.UUID
	if id := aggregate.Carrier(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			Position:   i,
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitWeight: item.UnitWeight(),
		})
	}

	timeline := aggregate.Timeline()
	customer := aggregate.Customer()

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		OrderNumber:        aggregate.OrderNumber(),
		ShipperID:          aggregate.ShipperID().Bytes(),
		CarrierID:          carrierID,
		Origin:             aggregate.Origin(),
		Destination:        aggregate.Destination(),
		Weight:             aggregate.Weight(),
		CustomerName:       customer.Name(),
		CustomerEmail:      customer.Email(),
		CustomerPhone:      customer.Phone(),
		Notes:              aggregate.Notes(),
		CancellationReason: aggregate.CancellationReason(),
		TrackingNumber:     aggregate.TrackingNumber(),
		EstimatedDelivery:  aggregate.EstimatedDelivery(),
		Status:             int(aggregate.Status()),
		CreatedAt:          timeline.CreatedAt,
		AcceptedAt:         timeline.AcceptedAt,
		PickedUpAt:         timeline.PickedUpAt,
		InTransitAt:        timeline.InTransitAt,
		DeliveredAt:        timeline.DeliveredAt,
		CancelledAt:        timeline.CancelledAt,
		UpdatedAt:          timeline.UpdatedAt,
		Items:              items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, so database rows pass the same validation as service
// responses.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}

		carrierID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Quantity, itemDTO.UnitWeight)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerEmail, dto.CustomerPhone)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		OrderNumber:        dto.OrderNumber,
		ShipperID:          shipperID,
		CarrierID:          carrierID,
		Origin:             dto.Origin,
		Destination:        dto.Destination,
		Weight:             dto.Weight,
		Items:              items,
		Customer:           customer,
		Notes:              dto.Notes,
		CancellationReason: dto.CancellationReason,
		TrackingNumber:     dto.TrackingNumber,
		EstimatedDelivery:  dto.EstimatedDelivery,
		Status:             order.Status(dto.Status),
		Timeline: order.Timeline{
			CreatedAt:   dto.CreatedAt,
			AcceptedAt:  dto.AcceptedAt,
			PickedUpAt:  dto.PickedUpAt,
			InTransitAt: dto.InTransitAt,
			DeliveredAt: dto.DeliveredAt,
			CancelledAt: dto.CancelledAt,
			UpdatedAt:   dto.UpdatedAt,
		},
	})
}
