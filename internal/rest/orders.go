package rest

import (
	"context"
	"net/http"
	"time"

	"oneMinuteShop/domain"
	"oneMinuteShop/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
		timeout       time.Duration
	}

	OrdersService interface {
		CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
		ListOrders(ctx context.Context, tenantRef string) ([]domain.Order, error)
		UpdateOrder(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error)
	}

	OrdersInput struct {
		TenantID             string         `json:"tenant_id" validate:"required"`
		CustomerName         string         `json:"customer_name" validate:"required"`
		CustomerEmail        string         `json:"customer_email" validate:"required"`
		ShippingAddress      map[string]any `json:"shipping_address" validate:"required"`
		OrderTotal           *float64       `json:"order_total" validate:"required,gte=0"`
		Status               string         `json:"status"`
		TransactionID        *string        `json:"transaction_id"`
		PaymentScreenshotURL *string        `json:"payment_screenshot_url"`
	}

	// UpdateInput fields left out of the body, or sent as null, are not
	// changed.
	UpdateInput struct {
		Status               *string `json:"status"`
		TransactionID        *string `json:"transaction_id"`
		PaymentScreenshotURL *string `json:"payment_screenshot_url"`
	}
)

func NewOrdersHandler(ordersService OrdersService, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		validate:      newValidator(),
		ordersService: ordersService,
		timeout:       timeout,
	}
}

func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	var request OrdersInput

	if err := c.Bind(&request); err != nil {
		logger.Warn("invalid order request body", "error", err)
		return c.JSON(http.StatusBadRequest, NewResponseError(errInvalidBody.Error()))
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.JSON(http.StatusBadRequest, NewResponseError(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.CreateOrder(ctx, &domain.Order{
		TenantID:             request.TenantID,
		CustomerName:         request.CustomerName,
		CustomerEmail:        request.CustomerEmail,
		ShippingAddress:      request.ShippingAddress,
		OrderTotal:           *request.OrderTotal,
		Status:               request.Status,
		TransactionID:        request.TransactionID,
		PaymentScreenshotURL: request.PaymentScreenshotURL,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrdersHandler) ListOrders(c echo.Context) error {
	var tenantRef string
	if err := echo.QueryParamsBinder(c).MustString("tenant_id", &tenantRef).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, NewResponseError(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.ListOrders(ctx, tenantRef)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrdersHandler) UpdateOrder(c echo.Context) error {
	var request UpdateInput

	if err := c.Bind(&request); err != nil {
		logger.Warn("invalid order update body", "error", err)
		return c.JSON(http.StatusBadRequest, NewResponseError(errInvalidBody.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.UpdateOrder(ctx, c.Param("id"), domain.OrderPatch{
		Status:               request.Status,
		TransactionID:        request.TransactionID,
		PaymentScreenshotURL: request.PaymentScreenshotURL,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}
