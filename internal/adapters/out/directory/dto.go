package directory

import (
	"time"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/ports"
)

// orderResponse is the directory service's wire representation of an order.
// Status casing varies between service versions, so it is normalized through
// order.ParseStatus rather than compared verbatim.
type orderResponse struct {
	ID                 string          `json:"id"`
	OrderNumber        string          `json:"order_number"`
	Status             string          `json:"status"`
	ShipperID          string          `json:"shipper_id"`
	CarrierID          *string         `json:"carrier_id,omitempty"`
	Origin             string          `json:"origin"`
	Destination        string          `json:"destination"`
	Weight             float64         `json:"weight"`
	Items              []itemPayload   `json:"items"`
	Customer           customerPayload `json:"customer"`
	Notes              string          `json:"notes,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	TrackingNumber     string          `json:"tracking_number,omitempty"`
	EstimatedDelivery  *time.Time      `json:"estimated_delivery,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	AcceptedAt         *time.Time      `json:"accepted_at,omitempty"`
	PickedUpAt         *time.Time      `json:"picked_up_at,omitempty"`
	InTransitAt        *time.Time      `json:"in_transit_at,omitempty"`
	DeliveredAt        *time.Time      `json:"delivered_at,omitempty"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type itemPayload struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitWeight float64 `json:"unit_weight"`
}

type customerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type pagedResponse struct {
	Orders []orderResponse `json:"orders"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Pages  int             `json:"pages"`
}

type createOrderRequest struct {
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Weight      float64         `json:"weight"`
	Items       []itemPayload   `json:"items"`
	Customer    customerPayload `json:"customer"`
	Notes       string          `json:"notes,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func newCreateOrderRequest(draft ports.OrderDraft) createOrderRequest {
	items := make([]itemPayload, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, itemPayload{
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitWeight: item.UnitWeight(),
		})
	}

	return createOrderRequest{
		Origin:      draft.Origin,
		Destination: draft.Destination,
		Weight:      draft.Weight,
		Items:       items,
		Customer: customerPayload{
			Name:  draft.Customer.Name(),
			Email: draft.Customer.Email(),
			Phone: draft.Customer.Phone(),
		},
		Notes: draft.Notes,
	}
}

func (r orderResponse) toDomain() (*order.Order, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return nil, err
	}
	shipperID, err := kernel.UUIDFromString(r.ShipperID)
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if r.CarrierID != nil {
		parsed, err := kernel.UUIDFromString(*r.CarrierID)
		if err != nil {
			return nil, err
		}
		carrierID = &parsed
	}

	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(r.Items))
	for _, payload := range r.Items {
		item, err := order.NewItem(payload.Name, payload.Quantity, payload.UnitWeight)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	customer, err := order.NewCustomer(r.Customer.Name, r.Customer.Email, r.Customer.Phone)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		OrderNumber:        r.OrderNumber,
		ShipperID:          shipperID,
		CarrierID:          carrierID,
		Origin:             r.Origin,
		Destination:        r.Destination,
		Weight:             r.Weight,
		Items:              items,
		Customer:           customer,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		TrackingNumber:     r.TrackingNumber,
		EstimatedDelivery:  r.EstimatedDelivery,
		Status:             status,
		Timeline: order.Timeline{
			CreatedAt:   r.CreatedAt,
			AcceptedAt:  r.AcceptedAt,
			PickedUpAt:  r.PickedUpAt,
			InTransitAt: r.InTransitAt,
			DeliveredAt: r.DeliveredAt,
			CancelledAt: r.CancelledAt,
			UpdatedAt:   r.UpdatedAt,
		},
	})
}

func (p pagedResponse) toDomain() (ports.PagedOrders, error) {
	items := make([]*order.Order, 0, len(p.Orders))
	for _, resp := range p.Orders {
		o, err := resp.toDomain()
		if err != nil {
			return ports.PagedOrders{}, err
		}
		items = append(items, o)
	}

	return ports.PagedOrders{
		Items: items,
		Total: p.Total,
		Page:  p.Page,
		Pages: p.Pages,
	}, nil
}
