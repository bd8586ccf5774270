package handlers

import (
	"net/http"

	"foodcart/internal/common"
	"foodcart/internal/models"
	"foodcart/internal/repositories"
	"foodcart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type RestaurantHandlers struct {
	restaurantRepo repositories.RestaurantRepository
	menuItemRepo   repositories.MenuItemRepository
	productService services.ProductServiceInterface
}

func NewRestaurantHandlers(restaurantRepo repositories.RestaurantRepository, menuItemRepo repositories.MenuItemRepository,
	productService services.ProductServiceInterface) *RestaurantHandlers {
	return &RestaurantHandlers{
		restaurantRepo: restaurantRepo,
		menuItemRepo:   menuItemRepo,
		productService: productService,
	}
}

// ListRestaurants handles GET /restaurants
func (h *RestaurantHandlers) ListRestaurants(c echo.Context) error {
	limit, offset := paginationParams(c)
	restaurants, err := h.restaurantRepo.List(c.Request().Context(), limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list restaurants")
	}
	return c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant handles GET /restaurants/:id
func (h *RestaurantHandlers) GetRestaurant(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	restaurant, err := h.restaurantRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Restaurant")
	}
	return c.JSON(http.StatusOK, restaurant)
}

// CreateRestaurant handles POST /restaurants
func (h *RestaurantHandlers) CreateRestaurant(c echo.Context) error {
	var req struct {
		Name         string `json:"name"`
		Address      string `json:"address"`
		ContactPhone string `json:"contact_phone"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}

	restaurant := &models.Restaurant{
		ID:           uuid.New(),
		Name:         req.Name,
		Address:      req.Address,
		ContactPhone: req.ContactPhone,
	}
	if err := h.restaurantRepo.Create(c.Request().Context(), restaurant); err != nil {
		return common.SendServerError(c, "Failed to create restaurant")
	}
	return c.JSON(http.StatusCreated, restaurant)
}

// UpdateRestaurant handles PUT /restaurants/:id
func (h *RestaurantHandlers) UpdateRestaurant(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	restaurant, err := h.restaurantRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Restaurant")
	}

	var req struct {
		Name         *string `json:"name"`
		Address      *string `json:"address"`
		ContactPhone *string `json:"contact_phone"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.ContactPhone != nil {
		restaurant.ContactPhone = *req.ContactPhone
	}

	if err := h.restaurantRepo.Update(c.Request().Context(), restaurant); err != nil {
		return common.SendServerError(c, "Failed to update restaurant")
	}
	return c.JSON(http.StatusOK, restaurant)
}

// DeleteRestaurant handles DELETE /restaurants/:id
func (h *RestaurantHandlers) DeleteRestaurant(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	if err := h.restaurantRepo.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete restaurant")
	}
	return c.NoContent(http.StatusNoContent)
}

// ListMenu handles GET /restaurants/:id/menu
func (h *RestaurantHandlers) ListMenu(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	items, err := h.menuItemRepo.ListByRestaurant(c.Request().Context(), id)
	if err != nil {
		return common.SendServerError(c, "Failed to list menu")
	}
	return c.JSON(http.StatusOK, items)
}

// SetMenuItem handles PUT /restaurants/:id/menu — upserts the listing of a
// product on this restaurant's menu and its availability flag.
func (h *RestaurantHandlers) SetMenuItem(c echo.Context) error {
	restaurantID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req struct {
		ProductID    string `json:"product_id"`
		Availability bool   `json:"availability"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	productID, err := common.ValidateUUID(req.ProductID, "product_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	item := &models.MenuItem{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		ProductID:    productID,
		Availability: req.Availability,
	}
	if err := h.productService.SetMenuItem(c.Request().Context(), item); err != nil {
		return common.SendServerError(c, "Failed to update menu item")
	}
	return c.JSON(http.StatusOK, item)
}
