package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/generated/servers"
	"ordermanagement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const resetMessage = "Reset complete. Next order will start at ID 1."

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	resetOrdersHandler       commands.ResetOrdersCommandHandler

	// Query handlers
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getOrderHandler     queries.GetOrderQueryHandler

	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	resetOrdersHandler commands.ResetOrdersCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		resetOrdersHandler:       resetOrdersHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderHandler:          getOrderHandler,
		logger:                   logger.With("component", "http_server"),
	}
}

// ListOrders handles GET /api/orders - retrieves every order.
func (s *Server) ListOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders - creates an order, or overwrites the
// stored order when the body names an existing id.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := toCreateOrderCommand(newOrder)
	if err != nil {
		return s.fail(ctx, err, "Invalid order data")
	}

	saved, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to save order")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(saved))
}

// ResetOrders handles DELETE /api/orders/reset - removes every order and
// restarts ids at 1.
func (s *Server) ResetOrders(ctx echo.Context) error {
	cmd := commands.NewResetOrdersCommand()

	if err := s.resetOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to reset orders")
	}

	s.logger.InfoContext(ctx.Request().Context(), "Orders reset")
	return ctx.String(http.StatusOK, resetMessage)
}

// DeleteOrder handles DELETE /api/orders/{id}. A missing order is not reported.
func (s *Server) DeleteOrder(ctx echo.Context, id servers.OrderID) error {
	cmd, err := commands.NewDeleteOrderCommand(kernel.ID(id))
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to delete order")
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrder handles GET /api/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id servers.OrderID) error {
	query, err := queries.NewGetOrderQuery(kernel.ID(id))
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// UpdateOrder handles PUT /api/orders/{id}. It only changes the status.
func (s *Server) UpdateOrder(ctx echo.Context, id servers.OrderID) error {
	return s.updateStatus(ctx, id)
}

// UpdateOrderStatus handles PUT /api/orders/{id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id servers.OrderID) error {
	return s.updateStatus(ctx, id)
}

func (s *Server) updateStatus(ctx echo.Context, id servers.OrderID) error {
	var update servers.StatusUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.ID(id), deref(update.Status))
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	saved, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to update order status")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(saved))
}

// fail writes the error body for err. Domain validation errors are 400,
// missing orders 404 and everything else 500 without internal details.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"error", err,
			"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID),
		)
	} else {
		message += ": " + err.Error()
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
