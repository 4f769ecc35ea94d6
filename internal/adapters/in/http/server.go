// Package http is the inbound HTTP adapter. It binds request DTOs, drives
// the booking wizard and the command/query handlers, and maps domain errors
// to status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/settings"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases. The
// quote and booking endpoints additionally build domain services from the
// current settings snapshot, so refreshed configuration applies to the next
// request without a restart.
type Server struct {
	// Command handlers
	submitBookingHandler      commands.SubmitBookingCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	createStainRequestHandler commands.CreateStainRequestCommandHandler
	reviewStainRequestHandler commands.ReviewStainRequestCommandHandler

	// Query handlers
	getActiveOrdersHandler         queries.GetActiveOrdersQueryHandler
	getOrdersForPickupDateHandler  queries.GetOrdersForPickupDateQueryHandler
	getPendingStainRequestsHandler queries.GetPendingStainRequestsQueryHandler
	getSettingsHandler             queries.GetSettingsQueryHandler

	catalog       catalog.Catalog
	settingsStore *settings.Store
}

// NewServer creates a new HTTP server with the required command and query
// handlers, the service catalog, and the live settings store.
func NewServer(
	submitBookingHandler commands.SubmitBookingCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createStainRequestHandler commands.CreateStainRequestCommandHandler,
	reviewStainRequestHandler commands.ReviewStainRequestCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrdersForPickupDateHandler queries.GetOrdersForPickupDateQueryHandler,
	getPendingStainRequestsHandler queries.GetPendingStainRequestsQueryHandler,
	getSettingsHandler queries.GetSettingsQueryHandler,
	cat catalog.Catalog,
	settingsStore *settings.Store,
) *Server {
	return &Server{
		submitBookingHandler:           submitBookingHandler,
		updateOrderStatusHandler:       updateOrderStatusHandler,
		createStainRequestHandler:      createStainRequestHandler,
		reviewStainRequestHandler:      reviewStainRequestHandler,
		getActiveOrdersHandler:         getActiveOrdersHandler,
		getOrdersForPickupDateHandler:  getOrdersForPickupDateHandler,
		getPendingStainRequestsHandler: getPendingStainRequestsHandler,
		getSettingsHandler:             getSettingsHandler,
		catalog:                        cat,
		settingsStore:                  settingsStore,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1")
	api.GET("/services", s.GetServices)
	api.POST("/quotes", s.CreateQuote)
	api.POST("/bookings", s.CreateBooking)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/pickups", s.GetOrdersForPickupDate)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/stain-requests", s.CreateStainRequest)
	api.GET("/stain-requests/pending", s.GetPendingStainRequests)
	api.POST("/stain-requests/:id/review", s.ReviewStainRequest)
	api.GET("/settings", s.GetSettings)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetServices handles GET /api/v1/services - lists the service catalog.
func (s *Server) GetServices(ctx echo.Context) error {
	entries := s.catalog.All()

	response := make([]ServiceResponse, len(entries))
	for i, entry := range entries {
		response[i] = ServiceResponse{
			ID:          entry.ID(),
			DisplayName: entry.DisplayName(),
			UnitPrice:   entry.UnitPrice().String(),
			Unit:        entry.Unit().String(),
			Category:    entry.Category(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateQuote handles POST /api/v1/quotes - classifies the zip and prices
// the selection without creating anything.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var request QuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	zip, err := kernel.NewZipCode(request.ZipCode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid zip code: " + err.Error(),
		})
	}

	snapshot := s.settingsStore.Current()
	classifier := services.NewZoneClassifier(snapshot)
	engine := services.NewPricingEngine(s.catalog, snapshot)

	zone, _, err := classifier.Classify(zip)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Failed to classify zip code: " + err.Error(),
		})
	}

	breakdown, err := engine.Price(services.Selection{
		ServiceID:      request.ServiceID,
		WeightLbs:      request.EstimatedWeightLbs,
		ItemQuantities: request.ItemQuantities,
	}, zone)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid service selection: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, QuoteResponse{
		Zone:      zone.String(),
		Subtotal:  breakdown.Subtotal.String(),
		Surcharge: breakdown.Surcharge.String(),
		Total:     breakdown.Total.String(),
	})
}

// CreateBooking handles POST /api/v1/bookings - replays the submission
// through the booking wizard and, if every step guard passes, submits the
// resulting order request.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var request BookingRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderRequest, wizardErr := s.runWizard(request)
	if wizardErr != nil {
		status := http.StatusBadRequest
		if errors.Is(wizardErr, booking.ErrOutsideServiceArea) {
			status = http.StatusUnprocessableEntity
		}
		return ctx.JSON(status, Error{
			Code:    status,
			Message: wizardErr.Error(),
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitBookingCommand(orderID, request.CustomerName, orderRequest)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid booking data: " + err.Error(),
		})
	}

	if handleErr := s.submitBookingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to submit booking",
		})
	}

	return ctx.JSON(http.StatusCreated, BookingResponse{
		OrderID:   orderID.String(),
		Zone:      orderRequest.Zone.String(),
		Subtotal:  orderRequest.Breakdown.Subtotal.String(),
		Surcharge: orderRequest.Breakdown.Surcharge.String(),
		Total:     orderRequest.Breakdown.Total.String(),
	})
}

// runWizard replays a full submission through the four wizard steps. Each
// Advance enforces the same guards an interactive session would hit, so a
// submission that skips required inputs fails exactly where the UI would.
func (s *Server) runWizard(request BookingRequest) (booking.OrderRequest, error) {
	snapshot := s.settingsStore.Current()
	classifier := services.NewZoneClassifier(snapshot)
	engine := services.NewPricingEngine(s.catalog, snapshot)

	wizard, err := booking.NewWizard(s.catalog, classifier, engine, request.StudentEntry)
	if err != nil {
		return booking.OrderRequest{}, err
	}

	if err = wizard.SetZipCode(request.ZipCode); err != nil {
		return booking.OrderRequest{}, err
	}
	wizard.SetAddress(request.Address)
	if err = wizard.Advance(); err != nil {
		return booking.OrderRequest{}, err
	}

	if request.ServiceID != "" {
		if err = wizard.SelectService(request.ServiceID); err != nil {
			return booking.OrderRequest{}, err
		}
	}
	if request.EstimatedWeightLbs > 0 {
		if err = wizard.SetEstimatedWeight(request.EstimatedWeightLbs); err != nil {
			return booking.OrderRequest{}, err
		}
	}
	for itemID, quantity := range request.ItemQuantities {
		if err = wizard.SetItemQuantity(itemID, quantity); err != nil {
			return booking.OrderRequest{}, err
		}
	}
	if err = wizard.Advance(); err != nil {
		return booking.OrderRequest{}, err
	}

	if request.PickupDate != "" {
		date, parseErr := time.Parse("2006-01-02", request.PickupDate)
		if parseErr != nil {
			return booking.OrderRequest{}, errs.NewValueIsInvalidErrorWithCause("pickupDate", parseErr)
		}
		if err = wizard.SetPickupDate(date); err != nil {
			return booking.OrderRequest{}, err
		}
	}
	if request.PickupTimeSlot != "" {
		slot, slotErr := kernel.TimeSlotFromString(request.PickupTimeSlot)
		if slotErr != nil {
			return booking.OrderRequest{}, slotErr
		}
		if err = wizard.SetPickupTimeSlot(slot); err != nil {
			return booking.OrderRequest{}, err
		}
	}
	wizard.SetSpecialInstructions(request.SpecialInstructions)
	if err = wizard.Advance(); err != nil {
		return booking.OrderRequest{}, err
	}

	return wizard.OrderRequest()
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all orders
// still in the fulfillment pipeline.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrdersForPickupDate handles GET /api/v1/orders/pickups?date=2006-01-02 -
// retrieves the pickup manifest for one date.
func (s *Server) GetOrdersForPickupDate(ctx echo.Context) error {
	date, err := time.Parse("2006-01-02", ctx.QueryParam("date"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid or missing date parameter, expected YYYY-MM-DD",
		})
	}

	query, err := queries.NewGetOrdersForPickupDateQuery(date)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid date: " + err.Error(),
		})
	}

	orders, err := s.getOrdersForPickupDateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status - applies one
// lifecycle transition to an order.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	transition, err := commands.TransitionFromString(request.Transition)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid transition: " + err.Error(),
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, transition)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update: " + err.Error(),
		})
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandErrorResponse(ctx, handleErr, "Failed to update order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateStainRequest handles POST /api/v1/stain-requests - files a new
// stain-treatment request.
func (s *Server) CreateStainRequest(ctx echo.Context) error {
	var request StainRequestRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var orderID *kernel.UUID
	if request.OrderID != "" {
		parsed, err := kernel.UUIDFromString(request.OrderID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order id",
			})
		}
		orderID = &parsed
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateStainRequestCommand(requestID, orderID, request.Garment, request.Description)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid stain request data: " + err.Error(),
		})
	}

	if handleErr := s.createStainRequestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandErrorResponse(ctx, handleErr, "Failed to create stain request")
	}

	return ctx.JSON(http.StatusCreated, StainRequestResponse{RequestID: requestID.String()})
}

// GetPendingStainRequests handles GET /api/v1/stain-requests/pending -
// retrieves all unresolved stain requests.
func (s *Server) GetPendingStainRequests(ctx echo.Context) error {
	query := queries.NewGetPendingStainRequestsQuery()

	requests, err := s.getPendingStainRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve stain requests",
		})
	}

	response := make([]PendingStainRequestResponse, len(requests))
	for i, request := range requests {
		row := PendingStainRequestResponse{
			ID:          request.ID.String(),
			Garment:     request.Garment,
			Description: request.Description,
			Status:      request.Status,
			CreatedAt:   request.CreatedAt,
		}
		if request.OrderID != nil {
			row.OrderID = request.OrderID.String()
		}
		response[i] = row
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReviewStainRequest handles POST /api/v1/stain-requests/:id/review -
// records a staff decision on a pending request.
func (s *Server) ReviewStainRequest(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid stain request id",
		})
	}

	var request ReviewStainRequestRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	resolution, err := commands.ResolutionFromString(request.Resolution)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid resolution: " + err.Error(),
		})
	}

	cmd, err := commands.NewReviewStainRequestCommand(requestID, resolution, request.Note)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid review data: " + err.Error(),
		})
	}

	if handleErr := s.reviewStainRequestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandErrorResponse(ctx, handleErr, "Failed to review stain request")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSettings handles GET /api/v1/settings - returns the raw settings table.
func (s *Server) GetSettings(ctx echo.Context) error {
	query := queries.NewGetSettingsQuery()

	values, err := s.getSettingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve settings",
		})
	}

	return ctx.JSON(http.StatusOK, values)
}

// commandErrorResponse maps a command handler error to a status code.
// Missing aggregates are 404, rejected state transitions are 409, anything
// else is a plain 500.
func (s *Server) commandErrorResponse(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

func toOrderResponses(orders []queries.GetActiveOrdersQueryResponse) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, order := range orders {
		response[i] = OrderResponse{
			ID:             order.ID.String(),
			CustomerName:   order.CustomerName,
			ServiceName:    order.ServiceName,
			Status:         order.Status,
			PickupDate:     order.PickupDate,
			PickupTimeSlot: order.PickupTimeSlot.String(),
			Total:          order.Total.String(),
		}
	}
	return response
}
