// Package http is the inbound REST adapter. It implements the generated
// servers.ServerInterface on top of the application's command and query
// handlers and translates domain errors into HTTP status codes.
package http

import (
	"context"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Use case ports the server depends on. The application handlers satisfy them
// through their pointer receivers.
type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	RouteAssigner interface {
		Handle(ctx context.Context, cmd commands.AssignRouteCommand) error
	}

	CapacityCommitter interface {
		Handle(ctx context.Context, cmd commands.CommitCapacityCommand) (bool, error)
	}

	RouteStatusUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateRouteStatusCommand) error
	}

	RouteAdvancer interface {
		Handle(ctx context.Context, cmd commands.AdvanceRouteStopCommand) (route.Arrival, error)
	}

	CompatibilityChecker interface {
		Handle(ctx context.Context, query queries.ValidateOrderRouteQuery) (queries.ValidateOrderRouteQueryResponse, error)
	}

	StatusHistoryReader interface {
		Handle(ctx context.Context, query queries.GetOrderStatusHistoryQuery) ([]queries.GetOrderStatusHistoryQueryResponse, error)
	}

	OrderReader interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}

	OrderLister interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.GetOrderQueryResponse, error)
	}

	RouteOrdersReader interface {
		Handle(ctx context.Context, query queries.GetRouteOrdersQuery) ([]queries.GetRouteOrdersQueryResponse, error)
	}
)

// Handlers bundles the use cases exposed over HTTP.
type Handlers struct {
	CreateOrder        OrderCreator
	AssignRoute        RouteAssigner
	CommitCapacity     CapacityCommitter
	UpdateRouteStatus  RouteStatusUpdater
	AdvanceRouteStop   RouteAdvancer
	CheckCompatibility CompatibilityChecker
	StatusHistory      StatusHistoryReader
	Order              OrderReader
	Orders             OrderLister
	RouteOrders        RouteOrdersReader
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// CreateOrder handles POST /api/v1/orders - creates a new pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromBytes(body.UserId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		userID,
		body.Weight,
		body.Length,
		body.Width,
		body.Height,
		body.ProductType,
		body.DeliveryCity,
		body.DestinationAddress,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetAllOrders handles GET /api/v1/orders with an optional status filter.
func (s *Server) GetAllOrders(ctx echo.Context, params servers.GetAllOrdersParams) error {
	var status string
	if params.Status != nil {
		status = *params.Status
	}

	query, err := queries.NewGetAllOrdersQuery(status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.handlers.Orders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	o, err := s.handlers.Order.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// GetOrderStatusHistory handles GET /api/v1/orders/{orderId}/status-history.
func (s *Server) GetOrderStatusHistory(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderStatusHistoryQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	history, err := s.handlers.StatusHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.StatusHistoryEntry, len(history))
	for i, h := range history {
		response[i] = servers.StatusHistoryEntry{
			Status:    h.Status,
			Timestamp: h.Timestamp,
		}
		if h.Comment != "" {
			comment := h.Comment
			response[i].Comment = &comment
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CheckRouteCompatibility handles GET /api/v1/orders/{orderId}/route-compatibility.
// Business rejections are part of a 200 response; only lookups that fail
// for technical reasons produce an error status.
func (s *Server) CheckRouteCompatibility(
	ctx echo.Context,
	orderId servers.OrderId,
	params servers.CheckRouteCompatibilityParams,
) error {
	orderID, routeID, err := parseOrderAndRoute(orderId, params.RouteId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewValidateOrderRouteQuery(orderID, routeID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	verdict, err := s.handlers.CheckCompatibility.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := servers.RouteCompatibility{Success: verdict.Success}
	if verdict.Error != "" {
		code := verdict.Error
		response.Error = &code
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignOrderRoute handles PATCH /api/v1/orders/{orderId}/route.
func (s *Server) AssignOrderRoute(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.RouteAssignment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, routeID, err := parseOrderAndRoute(orderId, body.RouteId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignRouteCommand(orderID, routeID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.AssignRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRouteOrders handles GET /api/v1/routes/{routeId}/orders.
func (s *Server) GetRouteOrders(ctx echo.Context, routeId servers.RouteId) error {
	routeID, err := kernel.UUIDFromBytes(routeId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetRouteOrdersQuery(routeID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.handlers.RouteOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.RouteOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.RouteOrder{
			Id:           o.ID.Bytes(),
			Status:       o.Status,
			DeliveryCity: o.DeliveryCity,
			Weight:       o.Weight,
			Volume:       o.Volume,
			DeliveredAt:  o.DeliveredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CommitRouteCapacity handles POST /api/v1/routes/{routeId}/capacity. A
// transporter without enough room is a normal outcome and yields
// {"committed": false}.
func (s *Server) CommitRouteCapacity(ctx echo.Context, routeId servers.RouteId) error {
	var body servers.CapacityReservation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, routeID, err := parseOrderAndRoute(body.OrderId, routeId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCommitCapacityCommand(routeID, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	committed, err := s.handlers.CommitCapacity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.CapacityCommit{Committed: committed})
}

// UpdateRouteStatus handles PATCH /api/v1/routes/{routeId}/status.
func (s *Server) UpdateRouteStatus(ctx echo.Context, routeId servers.RouteId) error {
	var body servers.RouteStatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	routeID, err := kernel.UUIDFromBytes(routeId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateRouteStatusCommand(routeID, string(body.Status))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.UpdateRouteStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceRouteStop handles PATCH /api/v1/routes/{routeId}/current-stop.
func (s *Server) AdvanceRouteStop(ctx echo.Context, routeId servers.RouteId) error {
	routeID, err := kernel.UUIDFromBytes(routeId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAdvanceRouteStopCommand(routeID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	arrival, err := s.handlers.AdvanceRouteStop.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := servers.StopArrival{
		Position:   arrival.Position,
		ReachedEnd: arrival.ReachedEnd,
	}
	if arrival.Stop != nil {
		city := arrival.Stop.City().Name()
		response.City = &city
	}

	return ctx.JSON(http.StatusOK, response)
}

func toOrderResponse(o queries.GetOrderQueryResponse) servers.Order {
	response := servers.Order{
		Id:                 o.ID.Bytes(),
		UserId:             o.UserID.Bytes(),
		Status:             o.Status,
		DeliveryCity:       o.DeliveryCity,
		DestinationAddress: o.DestinationAddress,
		ProductType:        o.ProductType,
		Weight:             o.Weight,
		Volume:             o.Volume,
		CreatedAt:          o.CreatedAt,
		DeliveredAt:        o.DeliveredAt,
	}
	if o.RouteID != nil {
		routeID := o.RouteID.Bytes()
		response.RouteId = &routeID
	}
	return response
}

func parseOrderAndRoute(orderId, routeId servers.OrderId) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	routeID, err := kernel.UUIDFromBytes(routeId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, routeID, nil
}
