package http

import (
	"time"

	"freightline/internal/core/domain/model/order"
)

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

type createOrderRequest struct {
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Weight      float64         `json:"weight"`
	Items       []itemPayload   `json:"items"`
	Customer    customerPayload `json:"customer"`
	Notes       string          `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

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

type pagedResponse struct {
	Orders []orderResponse `json:"orders"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Pages  int             `json:"pages"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type meResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"user_id,omitempty"`
	AccountType   string `json:"account_type,omitempty"`
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]itemPayload, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, itemPayload{
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitWeight: item.UnitWeight(),
		})
	}

	var carrierID *string
	if carrier := o.Carrier(); carrier != nil {
		value := carrier.String()
		carrierID = &value
	}

	timeline := o.Timeline()
	customer := o.Customer()

	return orderResponse{
		ID:          o.ID().String(),
		OrderNumber: o.OrderNumber(),
		Status:      o.Status().String(),
		ShipperID:   o.ShipperID().String(),
		CarrierID:   carrierID,
		Origin:      o.Origin(),
		Destination: o.Destination(),
		Weight:      o.Weight(),
		Items:       items,
		Customer: customerPayload{
			Name:  customer.Name(),
			Email: customer.Email(),
			Phone: customer.Phone(),
		},
		Notes:              o.Notes(),
		CancellationReason: o.CancellationReason(),
		TrackingNumber:     o.TrackingNumber(),
		EstimatedDelivery:  o.EstimatedDelivery(),
		CreatedAt:          timeline.CreatedAt,
		AcceptedAt:         timeline.AcceptedAt,
		PickedUpAt:         timeline.PickedUpAt,
		InTransitAt:        timeline.InTransitAt,
		DeliveredAt:        timeline.DeliveredAt,
		CancelledAt:        timeline.CancelledAt,
		UpdatedAt:          timeline.UpdatedAt,
	}
}

func toPagedResponse(orders []*order.Order, total int64, page, pageSize int) pagedResponse {
	responses := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}

	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}

	return pagedResponse{
		Orders: responses,
		Total:  int(total),
		Page:   page,
		Pages:  pages,
	}
}
