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

type ProductService interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ListProducts(ctx context.Context, tenantRef string, onlyActive bool) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id, tenantRef string) error
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      newValidator(),
		timeout:        timeout,
	}
}

// ProductRequest is used for both create and update. On update TenantID
// names the caller, not a new owner.
type ProductRequest struct {
	TenantID    string   `json:"tenant_id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Inventory   *int     `json:"inventory" validate:"required,gte=0"`
	ImageURLs   []string `json:"image_urls"`
	IsActive    *bool    `json:"is_active"`
}

func (r ProductRequest) toDomain() *domain.Product {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	imageURLs := r.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	return &domain.Product{
		TenantID:    r.TenantID,
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Inventory:   *r.Inventory,
		ImageURLs:   imageURLs,
		IsActive:    isActive,
	}
}

func (h *ProductHandler) bindProduct(c echo.Context) (*domain.Product, error) {
	var req ProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Warn("failed to bind product request", "error", err)
		return nil, errInvalidBody
	}

	if err := h.validator.Struct(&req); err != nil {
		return nil, err
	}

	return req.toDomain(), nil
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	product, err := h.bindProduct(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewResponseError(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	newProduct, err := h.productService.CreateProduct(ctx, product)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, newProduct)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	var tenantRef string
	onlyActive := true

	err := echo.QueryParamsBinder(c).
		MustString("tenant_id", &tenantRef).
		Bool("only_active", &onlyActive).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewResponseError(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.ListProducts(ctx, tenantRef, onlyActive)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	product, err := h.bindProduct(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewResponseError(err.Error()))
	}
	product.ID = c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updatedProduct, err := h.productService.UpdateProduct(ctx, product)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, updatedProduct)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	var tenantRef string
	if err := echo.QueryParamsBinder(c).MustString("tenant_id", &tenantRef).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, NewResponseError(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.productService.DeleteProduct(ctx, c.Param("id"), tenantRef); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}
