// Package http exposes the dispatch use cases over a JSON API.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// msgOrderAlreadyClaimed is surfaced verbatim so courier apps can tell a
// lost race apart from other conflicts.
const msgOrderAlreadyClaimed = "Too late — already accepted by another courier"

// ErrorResponse is the JSON body returned for every non-2xx status.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addOrderHandler         commands.AddAvailableOrderCommandHandler
	claimOrderHandler       commands.ClaimOrderCommandHandler
	rejectOrderHandler      commands.RejectOrderCommandHandler
	markPickedUpHandler     commands.MarkPickedUpCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	setCourierStatusHandler commands.SetCourierStatusCommandHandler
	saveNotifyTokenHandler  commands.SaveNotifyTokenCommandHandler

	// Query handlers
	getAvailableOrdersHandler  queries.GetAvailableOrdersQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
	getCompletedOrdersHandler  queries.GetCompletedOrdersQueryHandler
	getPendingPayoutHandler    queries.GetPendingPayoutQueryHandler

	logger *slog.Logger
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	addOrderHandler commands.AddAvailableOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	markPickedUpHandler commands.MarkPickedUpCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	setCourierStatusHandler commands.SetCourierStatusCommandHandler,
	saveNotifyTokenHandler commands.SaveNotifyTokenCommandHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	getCompletedOrdersHandler queries.GetCompletedOrdersQueryHandler,
	getPendingPayoutHandler queries.GetPendingPayoutQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		addOrderHandler:            addOrderHandler,
		claimOrderHandler:          claimOrderHandler,
		rejectOrderHandler:         rejectOrderHandler,
		markPickedUpHandler:        markPickedUpHandler,
		completeDeliveryHandler:    completeDeliveryHandler,
		setCourierStatusHandler:    setCourierStatusHandler,
		saveNotifyTokenHandler:     saveNotifyTokenHandler,
		getAvailableOrdersHandler:  getAvailableOrdersHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
		getCompletedOrdersHandler:  getCompletedOrdersHandler,
		getPendingPayoutHandler:    getPendingPayoutHandler,
		logger:                     logger.With("component", "http"),
	}
}

// RegisterRoutes wires the API under /api/v1 plus the health and swagger
// endpoints.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	api.GET("/orders/available", s.GetAvailableOrders)
	api.POST("/orders", s.AddOrder)
	api.POST("/orders/claim", s.ClaimOrder)
	api.POST("/orders/reject", s.RejectOrder)
	api.POST("/orders/pickup", s.MarkPickedUp)
	api.GET("/orders/completed", s.GetCompletedOrders)
	api.POST("/deliveries/complete", s.CompleteDelivery)
	api.GET("/deliveries/active", s.GetActiveDeliveries)
	api.POST("/couriers/status", s.SetCourierStatus)
	api.POST("/couriers/token", s.SaveNotifyToken)
	api.GET("/couriers/:id/payout", s.GetPendingPayout)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetAvailableOrders handles GET /api/v1/orders/available. Couriers poll this
// endpoint, so failures degrade to an empty feed rather than an error page.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	query := queries.NewGetAvailableOrdersQuery(ctx.QueryParam("courierId"))

	orders, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("list available orders failed", "error", err)
		return ctx.JSON(http.StatusOK, []queries.GetAvailableOrdersQueryResponse{})
	}

	if orders == nil {
		orders = []queries.GetAvailableOrdersQueryResponse{}
	}
	return ctx.JSON(http.StatusOK, orders)
}

// AddOrder handles POST /api/v1/orders.
func (s *Server) AddOrder(ctx echo.Context) error {
	var request AddOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := request.toCommand()
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.addOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.ID().String()})
}

// ClaimOrder handles POST /api/v1/orders/claim. Exactly one courier wins a
// contested order; the rest receive 409 with msgOrderAlreadyClaimed.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	var request ClaimOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, request.CourierID, request.CourierName, request.CourierPhone)
	if err != nil {
		return badRequest(ctx, "Invalid claim data: "+err.Error())
	}

	if err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "claimed"})
}

// RejectOrder handles POST /api/v1/orders/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	var request RejectOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, request.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid reject data: "+err.Error())
	}

	if err := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "rejected"})
}

// MarkPickedUp handles POST /api/v1/orders/pickup.
func (s *Server) MarkPickedUp(ctx echo.Context) error {
	var request ClaimRef
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	claimID, err := kernel.UUIDFromString(request.ClaimID)
	if err != nil {
		return badRequest(ctx, "Invalid claim id")
	}

	cmd, err := commands.NewMarkPickedUpCommand(claimID)
	if err != nil {
		return badRequest(ctx, "Invalid pickup data: "+err.Error())
	}

	if err := s.markPickedUpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "picked_up"})
}

// CompleteDeliveryResponse is returned by POST /api/v1/deliveries/complete.
type CompleteDeliveryResponse struct {
	NewOrderID  string    `json:"newOrderId"`
	CompletedAt time.Time `json:"completedAt"`
	GrandTotal  float64   `json:"grandTotal"`
}

// CompleteDelivery handles POST /api/v1/deliveries/complete. Retries of an
// already-completed delivery return the earlier record.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	var request ClaimRef
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	claimID, err := kernel.UUIDFromString(request.ClaimID)
	if err != nil {
		return badRequest(ctx, "Invalid claim id")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(claimID)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	result, err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CompleteDeliveryResponse{
		NewOrderID:  result.CompletedID.String(),
		CompletedAt: result.CompletedAt,
		GrandTotal:  result.GrandTotal,
	})
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query, err := queries.NewGetActiveDeliveriesQuery(ctx.QueryParam("courierId"))
	if err != nil {
		return badRequest(ctx, "courierId is required")
	}

	deliveries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	if deliveries == nil {
		deliveries = []queries.GetActiveDeliveriesQueryResponse{}
	}
	return ctx.JSON(http.StatusOK, deliveries)
}

// GetCompletedOrders handles GET /api/v1/orders/completed.
func (s *Server) GetCompletedOrders(ctx echo.Context) error {
	query, err := queries.NewGetCompletedOrdersQuery(ctx.QueryParam("courierId"))
	if err != nil {
		return badRequest(ctx, "courierId is required")
	}

	completed, err := s.getCompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	if completed == nil {
		completed = []queries.GetCompletedOrdersQueryResponse{}
	}
	return ctx.JSON(http.StatusOK, completed)
}

// SetCourierStatus handles POST /api/v1/couriers/status.
func (s *Server) SetCourierStatus(ctx echo.Context) error {
	var request CourierStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetCourierStatusCommand(request.CourierID, request.IsActive)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if err := s.setCourierStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"isActive": request.IsActive})
}

// SaveNotifyToken handles POST /api/v1/couriers/token.
func (s *Server) SaveNotifyToken(ctx echo.Context) error {
	var request NotifyTokenRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSaveNotifyTokenCommand(request.CourierID, request.Token, request.Name, request.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid token data: "+err.Error())
	}

	if err := s.saveNotifyTokenHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
}

// GetPendingPayout handles GET /api/v1/couriers/:id/payout.
func (s *Server) GetPendingPayout(ctx echo.Context) error {
	query, err := queries.NewGetPendingPayoutQuery(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "courier id is required")
	}

	payout, err := s.getPendingPayoutHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, payout)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail maps use-case errors to HTTP statuses.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrOrderAlreadyClaimed):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: msgOrderAlreadyClaimed,
		})
	case errors.Is(err, commands.ErrCourierInactive), errors.Is(err, commands.ErrCourierBusy):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		s.logger.Error("request failed", "path", ctx.Path(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
