package handlers

import (
	"net/http"
	"strconv"

	"foodcart/internal/common"
	"foodcart/internal/models"
	"foodcart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProductHandlers struct {
	productService services.ProductServiceInterface
}

func NewProductHandlers(productService services.ProductServiceInterface) *ProductHandlers {
	return &ProductHandlers{productService: productService}
}

// ListAvailableProducts handles GET /api/products — the customer-facing
// listing of products currently offered by at least one restaurant.
func (h *ProductHandlers) ListAvailableProducts(c echo.Context) error {
	products, err := h.productService.ListAvailable(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to list products")
	}
	return c.JSON(http.StatusOK, products)
}

// ListProducts handles GET /products
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	limit, offset := paginationParams(c)
	products, err := h.productService.ListProducts(c.Request().Context(), limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list products")
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id
func (h *ProductHandlers) GetProduct(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	product, err := h.productService.GetProduct(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Product")
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	var req struct {
		Name        string  `json:"name"`
		CategoryID  *string `json:"category_id"`
		Price       float64 `json:"price"`
		ImageURL    *string `json:"image_url"`
		Special     bool    `json:"special"`
		Description string  `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}
	if req.Price < 0 {
		return common.SendValidationError(c, "price", "price must not be negative")
	}

	product := &models.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Special:     req.Special,
		Description: req.Description,
	}
	if req.CategoryID != nil && *req.CategoryID != "" {
		categoryID, err := common.ValidateUUID(*req.CategoryID, "category_id")
		if err != nil {
			return common.SendClientError(c, err.Error())
		}
		product.CategoryID = &categoryID
	}

	if err := h.productService.CreateProduct(c.Request().Context(), product); err != nil {
		return common.SendServerError(c, "Failed to create product")
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id
func (h *ProductHandlers) UpdateProduct(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	product, err := h.productService.GetProduct(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Product")
	}

	var req struct {
		Name        *string  `json:"name"`
		Price       *float64 `json:"price"`
		ImageURL    *string  `json:"image_url"`
		Special     *bool    `json:"special"`
		Description *string  `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return common.SendValidationError(c, "price", "price must not be negative")
		}
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}
	if req.Special != nil {
		product.Special = *req.Special
	}
	if req.Description != nil {
		product.Description = *req.Description
	}

	if err := h.productService.UpdateProduct(c.Request().Context(), product); err != nil {
		return common.SendServerError(c, "Failed to update product")
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id
func (h *ProductHandlers) DeleteProduct(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	if err := h.productService.DeleteProduct(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete product")
	}
	return c.NoContent(http.StatusNoContent)
}

func paginationParams(c echo.Context) (limit, offset int) {
	limit = 50
	offset = 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
