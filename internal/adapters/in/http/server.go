// Package http exposes the directory service's REST API. The server trusts
// the gateway-supplied identity headers (X-User-Id, X-Account-Type) instead
// of carrying its own token machinery.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/pkg/errs"
)

const (
	headerUserID      = "X-User-Id"
	headerAccountType = "X-Account-Type"

	defaultPageSize = 10
	maxPageSize     = 100
)

// OrderStore is the persistence boundary the server runs on. Implemented by
// the GORM repository.
type OrderStore interface {
	Add(ctx context.Context, aggregate *order.Order) error
	Update(ctx context.Context, aggregate *order.Order) error
	Assign(ctx context.Context, aggregate *order.Order) error
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	ListByShipper(ctx context.Context, shipperID kernel.UUID, page, pageSize int) ([]*order.Order, int64, error)
	ListByCarrier(ctx context.Context, carrierID kernel.UUID, page, pageSize int) ([]*order.Order, int64, error)
	ListUnassignedPending(ctx context.Context, page, pageSize int) ([]*order.Order, int64, error)
}

// actor is the authenticated caller, resolved from the identity headers.
type actor struct {
	userID kernel.UUID
	role   order.Role
}

// Server handles the directory service's HTTP requests.
type Server struct {
	store OrderStore
	log   *slog.Logger
	now   func() time.Time
}

// NewServer creates an HTTP server backed by the given order store.
func NewServer(store OrderStore, log *slog.Logger) *Server {
	return &Server{
		store: store,
		log:   log.With("component", "http_server"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/v1/auth/me", s.Me)
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders", s.ListOrders)
	e.GET("/api/v1/orders/available", s.ListAvailableOrders)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.POST("/api/v1/orders/:id/accept", s.AcceptOrder)
	e.PATCH("/api/v1/orders/:id/status", s.UpdateOrderStatus)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// Me handles GET /api/v1/auth/me. Requests without valid identity headers
// are reported as unauthenticated, not as errors.
func (s *Server) Me(c echo.Context) error {
	caller, err := s.actorFrom(c)
	if err != nil {
		return c.JSON(http.StatusOK, meResponse{Authenticated: false})
	}

	return c.JSON(http.StatusOK, meResponse{
		Authenticated: true,
		UserID:        caller.userID.String(),
		AccountType:   caller.role.String(),
	})
}

// CreateOrder handles POST /api/v1/orders. Shipper role only.
func (s *Server) CreateOrder(c echo.Context) error {
	caller, err := s.actorFrom(c)
	if err != nil {
		return unauthorized(c)
	}
	if caller.role != order.RoleShipper {
		return forbidden(c, "only shippers create orders")
	}

	var req createOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, payload := range req.Items {
		item, itemErr := order.NewItem(payload.Name, payload.Quantity, payload.UnitWeight)
		if itemErr != nil {
			return badRequest(c, itemErr.Error())
		}
		items = append(items, item)
	}

	customer, err := order.NewCustomer(req.Customer.Name, req.Customer.Email, req.Customer.Phone)
	if err != nil {
		return badRequest(c, err.Error())
	}

	created, err := order.NewOrder(
		kernel.NewUUID(),
		caller.userID,
		req.Origin,
		req.Destination,
		req.Weight,
		items,
		customer,
		req.Notes,
		s.now(),
	)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err = s.store.Add(c.Request().Context(), created); err != nil {
		return s.internalError(c, "create order", err)
	}

	return c.JSON(http.StatusCreated, toOrderResponse(created))
}

// ListOrders handles GET /api/v1/orders. Shippers see orders they created,
// carriers see orders assigned to them, newest first.
func (s *Server) ListOrders(c echo.Context) error {
	caller, err := s.actorFrom(c)
	if err != nil {
		return unauthorized(c)
	}

	page, pageSize := paging(c)

	var (
		orders []*order.Order
		total  int64
	)
	switch caller.role {
	case order.RoleShipper:
		orders, total, err = s.store.ListByShipper(c.Request().Context(), caller.userID, page, pageSize)
	case order.RoleCarrier:
		orders, total, err = s.store.ListByCarrier(c.Request().Context(), caller.userID, page, pageSize)
	default:
		return forbidden(c, "unknown role")
	}
	if err != nil {
		return s.internalError(c, "list orders", err)
	}

	return c.JSON(http.StatusOK, toPagedResponse(orders, total, page, pageSize))
}

// ListAvailableOrders handles GET /api/v1/orders/available. Carrier role
// only; lists unassigned pending orders.
func (s *Server) ListAvailableOrders(c echo.Context) error {
	caller, err := s.actorFrom(c)
	if err != nil {
		return unauthorized(c)
	}
	if caller.role != order.RoleCarrier {
		return forbidden(c, "only carriers browse available orders")
	}

	page, pageSize := paging(c)

	orders, total, err := s.store.ListUnassignedPending(c.Request().Context(), page, pageSize)
	if err != nil {
		return s.internalError(c, "list available orders", err)
	}

	return c.JSON(http.StatusOK, toPagedResponse(orders, total, page, pageSize))
}

// GetOrder handles GET /api/v1/orders/:id. Visible to the order's shipper
// and its assigned carrier; carriers may also read unassigned pending orders
// they are about to accept.
func (s *Server) GetOrder(c echo.Context) error {
	caller, err := s.actorFrom(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	found, err := s.store.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(c)
		}
		return s.internalError(c, "get order", err)
	}

	if !s.visibleTo(found, caller) {
		return forbidden(c, "order does not belong to the caller")
	}

	return c.JSON(http.StatusOK, toOrderResponse(found))
}

// AcceptOrder handles POST /api/v1/orders/:id/accept. Carrier role only.
// Exactly one of two racing carriers wins; the loser receives a conflict.
func (s *Server) AcceptOrder(c echo.Context) error {
	caller, err := s.actorFrom(c)
	if err != nil {
		return unauthorized(c)
	}
	if caller.role != order.RoleCarrier {
		return forbidden(c, "only carriers accept orders")
	}

	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	found, err := s.store.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(c)
		}
		return s.internalError(c, "accept order", err)
	}

	accepted, err := found.Accept(caller.userID, kernel.NewTrackingNumber(), s.now())
	if err != nil {
		if errors.Is(err, order.ErrCarrierAlreadyAssigned) {
			return conflict(c, "order already taken by another carrier")
		}
		return unprocessable(c, err.Error(), "invalid_transition")
	}

	// The conditional write decides the race; the in-memory check above can
	// act on a read that another carrier's accept has already outdated.
	if err = s.store.Assign(c.Request().Context(), accepted); err != nil {
		switch {
		case errors.Is(err, order.ErrCarrierAlreadyAssigned):
			return conflict(c, "order already taken by another carrier")
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(c)
		default:
			return s.internalError(c, "accept order", err)
		}
	}

	return c.JSON(http.StatusOK, toOrderResponse(accepted))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status. The transition
// policy decides what the acting role may do; ownership is checked first.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	caller, err := s.actorFrom(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var req updateStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(c, err.Error())
	}

	found, err := s.store.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(c)
		}
		return s.internalError(c, "update order status", err)
	}

	if !s.ownedBy(found, caller) {
		return forbidden(c, "order does not belong to the caller")
	}

	updated, err := order.RequestTransition(found, caller.role, target, req.Reason, s.now())
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingReason):
			return unprocessable(c, err.Error(), "missing_reason")
		case errors.Is(err, order.ErrIllegalTransition):
			return unprocessable(c, err.Error(), "invalid_transition")
		default:
			return badRequest(c, err.Error())
		}
	}

	if updated.Status() != found.Status() {
		if err = s.store.Update(c.Request().Context(), updated); err != nil {
			return s.internalError(c, "update order status", err)
		}
	}

	return c.JSON(http.StatusOK, toOrderResponse(updated))
}

// visibleTo extends ownership with the accept flow's read: a carrier may
// inspect an unassigned pending order before taking it.
func (s *Server) visibleTo(o *order.Order, caller actor) bool {
	if s.ownedBy(o, caller) {
		return true
	}
	return caller.role == order.RoleCarrier && o.Status() == order.Pending && o.Carrier() == nil
}

func (s *Server) ownedBy(o *order.Order, caller actor) bool {
	switch caller.role {
	case order.RoleShipper:
		return o.ShipperID().IsEqual(caller.userID)
	case order.RoleCarrier:
		return o.Carrier() != nil && o.Carrier().IsEqual(caller.userID)
	default:
		return false
	}
}

func (s *Server) actorFrom(c echo.Context) (actor, error) {
	userID, err := kernel.UUIDFromString(c.Request().Header.Get(headerUserID))
	if err != nil {
		return actor{}, err
	}

	role, err := order.ParseRole(c.Request().Header.Get(headerAccountType))
	if err != nil {
		return actor{}, err
	}

	return actor{userID: userID, role: role}, nil
}

func (s *Server) internalError(c echo.Context, operation string, err error) error {
	s.log.Error("request failed", "operation", operation, "error", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{
		Error: "internal error",
		Code:  "internal",
	})
}

func paging(c echo.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	pageSize, _ = strconv.Atoi(c.QueryParam("page_size"))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{
		Error: "missing or invalid identity headers",
		Code:  "unauthorized",
	})
}

func forbidden(c echo.Context, message string) error {
	return c.JSON(http.StatusForbidden, errorResponse{Error: message, Code: "forbidden"})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: message, Code: "bad_request"})
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, errorResponse{Error: "order not found", Code: "not_found"})
}

func conflict(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, errorResponse{Error: message, Code: "conflict"})
}

func unprocessable(c echo.Context, message, code string) error {
	return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: message, Code: code})
}
