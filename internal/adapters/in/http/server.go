package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases and maps
// application errors onto the API's three failure classes: validation
// failures become 422, missing orders become 404 and everything else is
// reported as 503.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	updateOrderItemsHandler commands.UpdateOrderItemsCommandHandler
	deleteOrderHandler      commands.DeleteOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	payOrderHandler         commands.PayOrderCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderItemsHandler commands.UpdateOrderItemsCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		updateOrderItemsHandler: updateOrderItemsHandler,
		deleteOrderHandler:      deleteOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		payOrderHandler:         payOrderHandler,
		listOrdersHandler:       listOrdersHandler,
		getOrderHandler:         getOrderHandler,
	}
}

// ListOrders handles GET /v1/orders - retrieves orders with optional
// cancelled filtering and a result limit.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(params.Cancelled, params.Limit)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders := make([]servers.Order, len(response.Orders))
	for i, aggregate := range response.Orders {
		orders[i] = toOrderResponse(aggregate)
	}

	return ctx.JSON(http.StatusOK, servers.OrdersList{Orders: orders})
}

// CreateOrder handles POST /v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	newOrder, err := bindNewOrder(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items, err := toItemInputs(newOrder.Items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrder handles GET /v1/orders/{orderId} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	aggregate, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(aggregate))
}

// UpdateOrder handles PUT /v1/orders/{orderId} - replaces the order's
// entire item set. The semantics are full replacement, not merge.
func (s *Server) UpdateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	newOrder, err := bindNewOrder(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items, err := toItemInputs(newOrder.Items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderItemsCommand(id, items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.updateOrderItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// DeleteOrder handles DELETE /v1/orders/{orderId} - permanently removes an
// order together with all its items.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /v1/orders/{orderId}/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(cancelled))
}

// PayOrder handles POST /v1/orders/{orderId}/pay - registers payment for an order.
func (s *Server) PayOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewPayOrderCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	paid, err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(paid))
}

// bindNewOrder decodes a request body into a NewOrder. Decoding is strict:
// unknown fields and malformed JSON are rejected as validation failures.
func bindNewOrder(ctx echo.Context) (servers.NewOrder, error) {
	var newOrder servers.NewOrder

	decoder := json.NewDecoder(ctx.Request().Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&newOrder); err != nil {
		return servers.NewOrder{}, errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	return newOrder, nil
}

// toItemInputs converts wire items into validated application inputs.
func toItemInputs(items []servers.NewOrderItem) ([]commands.ItemInput, error) {
	inputs := make([]commands.ItemInput, 0, len(items))
	for _, item := range items {
		input, err := commands.NewItemInput(string(item.Product), string(item.Size), item.Quantity)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}

	return inputs, nil
}

// toKernelUUID converts a bound path parameter into a domain identifier.
func toKernelUUID(orderId openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(orderId[:])
}

// toOrderResponse maps an order aggregate onto its wire representation.
func toOrderResponse(aggregate *order.Order) servers.Order {
	items := make([]servers.OrderItem, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = servers.OrderItem{
			Id:       item.ID().Bytes(),
			Product:  servers.Product(item.Product().String()),
			Size:     servers.Size(item.Size().String()),
			Quantity: item.Quantity(),
		}
	}

	return servers.Order{
		Id:      aggregate.ID().Bytes(),
		Created: aggregate.Created(),
		Status:  servers.OrderStatus(aggregate.Status().String()),
		Items:   items,
	}
}

// errorResponse maps application errors onto API status codes:
// missing objects are 404, rejected input is 422, anything else 503.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Service temporarily unavailable",
		})
	}
}
