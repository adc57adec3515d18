// Package http exposes the fulfillment operations over a JSON API.
// Handlers translate requests into commands and queries, run them, and
// map domain errors onto HTTP statuses; no business logic lives here.
package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	editOrderHandler         commands.EditOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	returnOrderHandler       commands.ReturnOrderCommandHandler
	updateOrderCODHandler    commands.UpdateOrderCODCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getActivePromotionsHandler queries.GetActivePromotionsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	returnOrderHandler commands.ReturnOrderCommandHandler,
	updateOrderCODHandler commands.UpdateOrderCODCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActivePromotionsHandler queries.GetActivePromotionsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		editOrderHandler:         editOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		returnOrderHandler:       returnOrderHandler,
		updateOrderCODHandler:    updateOrderCODHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,

		getOrderHandler:            getOrderHandler,
		getActivePromotionsHandler: getActivePromotionsHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId", s.EditOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/return", s.ReturnOrder)
	api.PUT("/orders/:orderId/cod", s.UpdateOrderCOD)
	api.PUT("/orders/:orderId/status", s.UpdateOrderStatus)

	api.GET("/promotions", s.GetActivePromotions)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequestDTO
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	destination, err := kernel.NewDestination(req.Address, req.DistrictID, req.WardCode, req.ProvinceID)
	if err != nil {
		return badRequest(ctx, "Invalid destination: "+err.Error())
	}

	items := make([]commands.ItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return badRequest(ctx, "Invalid product id: "+item.ProductID)
		}
		items = append(items, commands.ItemRequest{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerName, req.CustomerPhone, destination, items, req.ServiceID, req.DiscountCodes)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return failure(ctx, err)
	}

	return success(ctx, http.StatusCreated, createOrderResponseDTO{
		OrderID:           result.OrderID,
		MerchandiseTotal:  result.MerchandiseTotal,
		ShippingFee:       result.ShippingFee,
		DiscountCode:      result.DiscountCode,
		DiscountAmount:    result.DiscountAmount,
		TotalAmount:       result.TotalAmount,
		ShipmentCode:      result.ShipmentCode,
		EstimatedLeadTime: result.EstimatedLeadTime,
		Status:            result.Status.String(),
	})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err)
	}

	return success(ctx, http.StatusOK, toOrderResponseDTO(result))
}

// EditOrder handles PUT /api/v1/orders/:orderId.
func (s *Server) EditOrder(ctx echo.Context) error {
	var req editOrderRequestDTO
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	destination, err := kernel.NewDestination(req.Address, req.DistrictID, req.WardCode, req.ProvinceID)
	if err != nil {
		return badRequest(ctx, "Invalid destination: "+err.Error())
	}

	cmd, err := commands.NewEditOrderCommand(
		ctx.Param("orderId"), req.CustomerName, req.CustomerPhone, destination)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.editOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}
	return success(ctx, http.StatusOK, nil)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	cmd, err := commands.NewCancelOrderCommand(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}
	return success(ctx, http.StatusOK, nil)
}

// ReturnOrder handles POST /api/v1/orders/:orderId/return.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	cmd, err := commands.NewReturnOrderCommand(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err := s.returnOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}
	return success(ctx, http.StatusOK, nil)
}

// UpdateOrderCOD handles PUT /api/v1/orders/:orderId/cod.
func (s *Server) UpdateOrderCOD(ctx echo.Context) error {
	var req updateCODRequestDTO
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCODCommand(ctx.Param("orderId"), req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid COD amount: "+err.Error())
	}

	if err := s.updateOrderCODHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}
	return success(ctx, http.StatusOK, nil)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req updateStatusRequestDTO
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("orderId"), order.Status(req.Status))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}
	return success(ctx, http.StatusOK, nil)
}

// GetActivePromotions handles GET /api/v1/promotions.
func (s *Server) GetActivePromotions(ctx echo.Context) error {
	promotions, err := s.getActivePromotionsHandler.Handle(
		ctx.Request().Context(), queries.NewGetActivePromotionsQuery())
	if err != nil {
		return failure(ctx, err)
	}

	dtos := make([]promotionResponseDTO, 0, len(promotions))
	for _, promo := range promotions {
		dtos = append(dtos, promotionResponseDTO{
			Code:              promo.Code,
			Percentage:        promo.Percentage,
			MaxDiscountAmount: promo.MaxDiscountAmount,
			MinOrderAmount:    promo.MinOrderAmount,
			EndDate:           promo.EndDate,
		})
	}
	return success(ctx, http.StatusOK, dtos)
}

func success(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, response{Success: true, Data: data, Code: status})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, response{
		Success: false,
		Message: message,
		Code:    http.StatusBadRequest,
	})
}

func failure(ctx echo.Context, err error) error {
	status := statusFor(err)
	return ctx.JSON(status, response{
		Success: false,
		Message: err.Error(),
		Code:    status,
	})
}
