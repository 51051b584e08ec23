// Package http is the inbound HTTP adapter. It translates the /api/orders
// routes into command and query handler calls and maps results and absence
// to status codes: absence is always 404 with an empty body, validation
// failures are one aggregated 400 body, store failures become 500.
package http

import (
	"net/http"
	"strconv"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests, coordinating between echo and the
// application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getOrderByIDHandler queries.GetOrderByIDQueryHandler

	validate *validator.Validate
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		updateOrderHandler:  updateOrderHandler,
		deleteOrderHandler:  deleteOrderHandler,
		getAllOrdersHandler: getAllOrdersHandler,
		getOrderByIDHandler: getOrderByIDHandler,
		validate:            NewValidator(),
	}
}

// RegisterRoutes mounts the order routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/orders")
	g.POST("", s.CreateOrder)
	g.GET("", s.GetOrders)
	g.GET("/:id", s.GetOrderByID)
	g.PUT("/:id", s.UpdateOrder)
	g.DELETE("/:id", s.DeleteOrder)
}

// CreateOrder handles POST /api/orders - creates a new order.
//
//	@Summary		Create a new order
//	@Description	Registers an order for a customer. Status is forced to "Pending" and the order date is server-assigned.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		CreateOrderRequest	true	"Order to create"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ServerError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := s.validate.Struct(req); err != nil {
		return ctx.JSON(http.StatusBadRequest,
			NewValidationFailedResponse(ctx.Request().URL.Path, validationMessages(err)))
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerName, req.TotalAmount)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ServerError{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ServerError{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrders handles GET /api/orders - retrieves all orders.
//
//	@Summary		List all orders
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}	OrderResponse
//	@Router			/api/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ServerError{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = queryToResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/orders/{id} - retrieves a single order.
//
//	@Summary		Get an order by id
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int	true	"Order identifier"
//	@Success		200	{object}	OrderResponse
//	@Failure		404	"Order not found"
//	@Router			/api/orders/{id} [get]
func (s *Server) GetOrderByID(ctx echo.Context) error {
	id, ok := parseOrderID(ctx)
	if !ok {
		return ctx.NoContent(http.StatusNotFound)
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return ctx.NoContent(http.StatusNotFound)
	}

	o, found, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ServerError{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}
	if !found {
		return ctx.NoContent(http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, queryToResponse(o))
}

// UpdateOrder handles PUT /api/orders/{id} - replaces an order's mutable fields.
//
//	@Summary		Update an existing order
//	@Description	Replaces customer name, status and total amount wholesale. There is no partial update.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Order identifier"
//	@Param			order	body		UpdateOrderRequest	true	"Replacement field values"
//	@Success		200		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		"Order not found"
//	@Router			/api/orders/{id} [put]
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, ok := parseOrderID(ctx)
	if !ok {
		return ctx.NoContent(http.StatusNotFound)
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ServerError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := s.validate.Struct(req); err != nil {
		return ctx.JSON(http.StatusBadRequest,
			NewValidationFailedResponse(ctx.Request().URL.Path, validationMessages(err)))
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.CustomerName, req.Status, req.TotalAmount)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ServerError{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	updated, found, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ServerError{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update order",
		})
	}
	if !found {
		return ctx.NoContent(http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// DeleteOrder handles DELETE /api/orders/{id} - removes an order.
//
//	@Summary		Delete an order
//	@Tags			orders
//	@Param			id	path	int	true	"Order identifier"
//	@Success		204	"Order deleted"
//	@Failure		404	"Order not found"
//	@Router			/api/orders/{id} [delete]
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, ok := parseOrderID(ctx)
	if !ok {
		return ctx.NoContent(http.StatusNotFound)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return ctx.NoContent(http.StatusNotFound)
	}

	deleted, err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ServerError{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete order",
		})
	}
	if !deleted {
		return ctx.NoContent(http.StatusNotFound)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// parseOrderID reads the :id path parameter. A non-numeric or non-positive
// id can never match a record, so callers answer 404.
func parseOrderID(ctx echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
