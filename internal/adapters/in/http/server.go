// Package http exposes the order workflow over a REST API. Handlers do no
// business logic: they translate between wire contracts and the command
// and query handlers, and map domain error categories to status codes.
package http

import (
	"errors"
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP routes to the application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	recordPaymentHandler     commands.RecordPaymentCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	assignScheduleHandler    commands.AssignScheduleCommandHandler

	getOrderHandler                 queries.GetOrderQueryHandler
	getOrdersAwaitingPaymentHandler queries.GetOrdersAwaitingPaymentQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	assignScheduleHandler commands.AssignScheduleCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersAwaitingPaymentHandler queries.GetOrdersAwaitingPaymentQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:              createOrderHandler,
		recordPaymentHandler:            recordPaymentHandler,
		changeOrderStatusHandler:        changeOrderStatusHandler,
		assignScheduleHandler:           assignScheduleHandler,
		getOrderHandler:                 getOrderHandler,
		getOrdersAwaitingPaymentHandler: getOrdersAwaitingPaymentHandler,
	}
}

// RegisterRoutes binds the API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/awaiting-payment", s.GetOrdersAwaitingPayment)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/payments", s.RecordPayment)
	api.POST("/orders/:id/schedule", s.AssignSchedule)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}

	orderType, err := order.OrderTypeFromString(req.OrderType)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]order.LineItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		menuItemID, itemErr := kernel.UUIDFromString(itemReq.MenuItemID)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}
		unitPrice, itemErr := kernel.NewMoneyFromCents(itemReq.UnitPriceCents)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}
		item, itemErr := order.NewLineItem(menuItemID, itemReq.Quantity, unitPrice)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, items, orderType, req.DeliveryDate)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	model, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(model))
}

// GetOrdersAwaitingPayment handles GET /api/v1/orders/awaiting-payment.
func (s *Server) GetOrdersAwaitingPayment(ctx echo.Context) error {
	balances, err := s.getOrdersAwaitingPaymentHandler.Handle(
		ctx.Request().Context(), queries.NewGetOrdersAwaitingPaymentQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OpenBalanceResponse, 0, len(balances))
	for _, balance := range balances {
		response = append(response, OpenBalanceResponse{
			ID:             balance.ID.String(),
			CustomerID:     balance.CustomerID.String(),
			Status:         balance.Status,
			TotalCents:     balance.TotalAmount.Cents(),
			PaidCents:      balance.PaidAmount.Cents(),
			RemainingCents: balance.RemainingBalance.Cents(),
			PaymentStatus:  balance.PaymentStatus,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	return s.applyStatusChange(ctx, req.Status)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept, the staff screen's
// shortcut for moving a pending order to confirmed.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	return s.applyStatusChange(ctx, order.Confirmed.String())
}

func (s *Server) applyStatusChange(ctx echo.Context, statusLabel string) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, statusLabel)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// RecordPayment handles POST /api/v1/orders/:id/payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	var req RecordPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	amount, err := kernel.NewMoneyFromCents(req.AmountCents)
	if err != nil {
		return writeError(ctx, err)
	}

	method, err := order.PaymentMethodFromString(req.Method)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, amount, method, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// AssignSchedule handles POST /api/v1/orders/:id/schedule.
func (s *Server) AssignSchedule(ctx echo.Context) error {
	var req AssignScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	staffID, err := kernel.UUIDFromString(req.StaffID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignScheduleCommand(orderID, staffID, req.ShiftLabel, req.Date)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.assignScheduleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, scheduleResponseFromAggregate(created))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps domain error categories to HTTP status codes:
// validation failures to 400, missing objects to 404, duplicate objects to
// 409, and rejected state transitions to 422.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
