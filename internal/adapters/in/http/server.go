package http

import (
	"errors"
	"net/http"
	"strconv"

	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/core/application/usecases/queries"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/order"
	"cleaning/internal/core/domain/services"
	"cleaning/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler            commands.CreateOrderCommandHandler
	claimOrderHandler             commands.ClaimOrderCommandHandler
	advanceOrderHandler           commands.AdvanceOrderCommandHandler
	assignOrderHandler            commands.AssignOrderCommandHandler
	createCleanerHandler          commands.CreateCleanerCommandHandler
	setCleanerAvailabilityHandler commands.SetCleanerAvailabilityCommandHandler

	// Query handlers
	getCustomerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	getCleanerOrdersHandler   queries.GetCleanerOrdersQueryHandler
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler
	getAllOrdersHandler       queries.GetAllOrdersQueryHandler
	getAllCleanersHandler     queries.GetAllCleanersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	createCleanerHandler commands.CreateCleanerCommandHandler,
	setCleanerAvailabilityHandler commands.SetCleanerAvailabilityCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getCleanerOrdersHandler queries.GetCleanerOrdersQueryHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllCleanersHandler queries.GetAllCleanersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		claimOrderHandler:             claimOrderHandler,
		advanceOrderHandler:           advanceOrderHandler,
		assignOrderHandler:            assignOrderHandler,
		createCleanerHandler:          createCleanerHandler,
		setCleanerAvailabilityHandler: setCleanerAvailabilityHandler,
		getCustomerOrdersHandler:      getCustomerOrdersHandler,
		getCleanerOrdersHandler:       getCleanerOrdersHandler,
		getAvailableOrdersHandler:     getAvailableOrdersHandler,
		getAllOrdersHandler:           getAllOrdersHandler,
		getAllCleanersHandler:         getAllCleanersHandler,
	}
}

// RegisterRoutes mounts the API route table with authentication and role guards.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))

	customer := api.Group("", RequireRole(RoleCustomer))
	customer.POST("/orders", s.CreateOrder)
	customer.GET("/orders/me", s.GetCustomerOrders)

	cleaner := api.Group("/cleaner", RequireRole(RoleCleaner))
	cleaner.GET("/orders/available", s.GetAvailableOrders)
	cleaner.GET("/orders", s.GetCleanerOrders)
	cleaner.POST("/orders/:id/claim", s.ClaimOrder)
	cleaner.PATCH("/orders/:id/status", s.UpdateOrderStatus)

	admin := api.Group("/admin", RequireRole(RoleAdmin))
	admin.GET("/orders", s.GetAllOrders)
	admin.PATCH("/orders/:id", s.PatchOrder)
	admin.GET("/cleaners", s.GetAllCleaners)
	admin.POST("/cleaners", s.CreateCleaner)
	admin.PATCH("/cleaners/:id/availability", s.SetCleanerAvailability)
}

// CreateOrder handles POST /api/v1/orders - books a new cleaning order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var geo *kernel.GeoPoint
	if req.Latitude != nil && req.Longitude != nil {
		point, err := kernel.NewGeoPoint(*req.Latitude, *req.Longitude)
		if err != nil {
			return respondError(ctx, err)
		}
		geo = &point
	}

	details, err := order.NewDetails(
		req.PropertyType, req.Rooms, req.Bathrooms, req.CleaningType,
		req.Address, req.Apartment, req.City, req.Phone, geo)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		item, itemErr := order.NewItem(line.ServiceName, line.Quantity, line.Price)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(actor.ID, details, items)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID})
}

// GetCustomerOrders handles GET /api/v1/orders/me - lists the caller's orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CustomerOrder, len(rows))
	for i, row := range rows {
		response[i] = toCustomerOrder(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableOrders handles GET /api/v1/cleaner/orders/available - the claim feed.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	query := queries.NewGetAvailableOrdersQuery(ctx.QueryParam("city"))

	rows, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AvailableOrder, len(rows))
	for i, row := range rows {
		response[i] = toAvailableOrder(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCleanerOrders handles GET /api/v1/cleaner/orders - lists the caller's claimed orders.
func (s *Server) GetCleanerOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetCleanerOrdersQuery(actor.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getCleanerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CleanerOrder, len(rows))
	for i, row := range rows {
		response[i] = toCleanerOrder(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClaimOrder handles POST /api/v1/cleaner/orders/:id/claim.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, actor.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateOrderStatus handles PATCH /api/v1/cleaner/orders/:id/status - advances
// an order one step along its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, actor.ID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetAllOrders handles GET /api/v1/admin/orders with optional status and city filters.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewGetAllOrdersQuery(status, ctx.QueryParam("city"))
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AdminOrder, len(rows))
	for i, row := range rows {
		response[i] = toAdminOrder(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PatchOrder handles PATCH /api/v1/admin/orders/:id - administrative
// reassignment or status override.
func (s *Server) PatchOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req AdminPatchOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var status *order.Status
	if req.Status != nil {
		parsed, statusErr := order.StatusFromString(*req.Status)
		if statusErr != nil {
			return respondError(ctx, statusErr)
		}
		status = &parsed
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, req.CleanerID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetAllCleaners handles GET /api/v1/admin/cleaners.
func (s *Server) GetAllCleaners(ctx echo.Context) error {
	rows, err := s.getAllCleanersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllCleanersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AdminCleaner, len(rows))
	for i, row := range rows {
		response[i] = toAdminCleaner(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCleaner handles POST /api/v1/admin/cleaners.
func (s *Server) CreateCleaner(ctx echo.Context) error {
	var req CreateCleanerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCleanerCommand(req.UserID, req.Name, req.City)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createCleanerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// SetCleanerAvailability handles PATCH /api/v1/admin/cleaners/:id/availability.
func (s *Server) SetCleanerAvailability(ctx echo.Context) error {
	cleanerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid cleaner id")
	}

	var req SetAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetCleanerAvailabilityCommand(cleanerID, req.Available)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setCleanerAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func pathID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: ErrMissingToken.Error(),
	})
}

func respondError(ctx echo.Context, err error) error {
	code := statusFromError(err)
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

// statusFromError maps domain and validation errors to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrOrderAlreadyTaken),
		errors.Is(err, services.ErrCleanerHasActiveOrder),
		errors.Is(err, services.ErrCleanerUnavailable):
		return http.StatusConflict
	case errors.Is(err, order.ErrNotAssigned):
		return http.StatusForbidden
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
