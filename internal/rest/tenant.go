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

type TenantService interface {
	CreateTenant(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetTenantBySubdomain(ctx context.Context, subdomain string) (domain.Tenant, error)
}

type TenantHandler struct {
	tenantService TenantService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewTenantHandler(tenantService TenantService, timeout time.Duration) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
		validator:     newValidator(),
		timeout:       timeout,
	}
}

type CreateTenantRequest struct {
	Subdomain      string         `json:"subdomain" validate:"required,subdomain"`
	Name           string         `json:"name" validate:"required"`
	Description    *string        `json:"description"`
	LogoURL        *string        `json:"logo_url"`
	PaymentDetails map[string]any `json:"payment_details"`
}

func (h *TenantHandler) CreateTenant(c echo.Context) error {
	var req CreateTenantRequest

	if err := c.Bind(&req); err != nil {
		logger.Warn("failed to bind tenant request", "error", err)
		return c.JSON(http.StatusBadRequest, NewResponseError(errInvalidBody.Error()))
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewResponseError(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	tenant, err := h.tenantService.CreateTenant(ctx, &domain.Tenant{
		Subdomain:      req.Subdomain,
		Name:           req.Name,
		Description:    req.Description,
		LogoURL:        req.LogoURL,
		PaymentDetails: req.PaymentDetails,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, tenant)
}

func (h *TenantHandler) GetTenantBySubdomain(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	tenant, err := h.tenantService.GetTenantBySubdomain(ctx, c.Param("subdomain"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, tenant)
}
