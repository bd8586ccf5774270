package handlers

import (
	"errors"
	"net/http"

	"foodcart/internal/common"
	"foodcart/internal/models"
	"foodcart/internal/services"

	"github.com/labstack/echo/v4"
)

type OrderHandlers struct {
	orderService services.OrderServiceInterface
}

func NewOrderHandlers(orderService services.OrderServiceInterface) *OrderHandlers {
	return &OrderHandlers{orderService: orderService}
}

// RegisterOrder handles POST /api/order — the customer order submission.
func (h *OrderHandlers) RegisterOrder(c echo.Context) error {
	var req struct {
		FirstName     string  `json:"firstname"`
		LastName      string  `json:"lastname"`
		PhoneNumber   string  `json:"phonenumber"`
		Address       string  `json:"address"`
		PaymentMethod string  `json:"payment_method"`
		Comment       *string `json:"comment"`
		Products      []struct {
			Product  string `json:"product"`
			Quantity int    `json:"quantity"`
		} `json:"products"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if len(req.Products) == 0 {
		return common.SendValidationError(c, "products", "order must contain at least one product")
	}

	items := make([]services.OrderItemRequest, 0, len(req.Products))
	for _, p := range req.Products {
		productID, err := common.ValidateUUID(p.Product, "product")
		if err != nil {
			return common.SendClientError(c, err.Error())
		}
		items = append(items, services.OrderItemRequest{ProductID: productID, Quantity: p.Quantity})
	}

	order := &models.Order{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		Comment:       req.Comment,
	}
	if err := h.orderService.PlaceOrder(c.Request().Context(), order, items); err != nil {
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /orders
func (h *OrderHandlers) ListOrders(c echo.Context) error {
	limit, offset := paginationParams(c)
	orders, err := h.orderService.ListOrders(c.Request().Context(), c.QueryParam("status"), limit, offset)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandlers) GetOrder(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	order, err := h.orderService.GetOrderByID(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Order")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"order": order,
		"total": order.Total(),
	})
}

// UpdateStatus handles PUT /orders/:id/status
func (h *OrderHandlers) UpdateStatus(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := h.orderService.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignRestaurant handles PUT /orders/:id/restaurant
func (h *OrderHandlers) AssignRestaurant(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	var req struct {
		RestaurantID string `json:"restaurant_id"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	restaurantID, err := common.ValidateUUID(req.RestaurantID, "restaurant_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	if err := h.orderService.AssignRestaurant(c.Request().Context(), id, restaurantID); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkCalled handles POST /orders/:id/called
func (h *OrderHandlers) MarkCalled(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	if err := h.orderService.MarkCalled(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to mark order as called")
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /orders/:id/delivered
func (h *OrderHandlers) MarkDelivered(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	if err := h.orderService.MarkDelivered(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to mark order as delivered")
	}
	return c.NoContent(http.StatusNoContent)
}

// RankCandidates handles GET /orders/:id/restaurants — the operator view of
// restaurants able to prepare the whole order, closest first. An empty list
// with unfulfillable=true means no restaurant offers every ordered product.
func (h *OrderHandlers) RankCandidates(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	candidates, err := h.orderService.RankCandidates(c.Request().Context(), id)
	if err != nil {
		var geocodeErr *services.GeocodeError
		if errors.As(err, &geocodeErr) {
			return common.SendUpstreamError(c, geocodeErr.Error())
		}
		return common.SendServerError(c, "Failed to rank restaurants")
	}
	return c.JSON(http.StatusOK, candidates)
}
