package handlers

import (
	"net/http"

	"foodcart/internal/common"
	"foodcart/internal/models"
	"foodcart/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CategoryHandlers struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryHandlers(categoryRepo repositories.CategoryRepository) *CategoryHandlers {
	return &CategoryHandlers{categoryRepo: categoryRepo}
}

// ListCategories handles GET /categories
func (h *CategoryHandlers) ListCategories(c echo.Context) error {
	categories, err := h.categoryRepo.List(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to list categories")
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /categories
func (h *CategoryHandlers) CreateCategory(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}

	category := &models.ProductCategory{ID: uuid.New(), Name: req.Name}
	if err := h.categoryRepo.Create(c.Request().Context(), category); err != nil {
		return common.SendServerError(c, "Failed to create category")
	}
	return c.JSON(http.StatusCreated, category)
}

// DeleteCategory handles DELETE /categories/:id
func (h *CategoryHandlers) DeleteCategory(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	if err := h.categoryRepo.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete category")
	}
	return c.NoContent(http.StatusNoContent)
}
