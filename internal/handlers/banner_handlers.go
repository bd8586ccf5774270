package handlers

import (
	"net/http"

	"foodcart/internal/common"
	"foodcart/internal/repositories"

	"github.com/labstack/echo/v4"
)

type BannerHandlers struct {
	bannerRepo repositories.BannerRepository
}

func NewBannerHandlers(bannerRepo repositories.BannerRepository) *BannerHandlers {
	return &BannerHandlers{bannerRepo: bannerRepo}
}

// ListBanners handles GET /api/banners
func (h *BannerHandlers) ListBanners(c echo.Context) error {
	banners, err := h.bannerRepo.List(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to list banners")
	}
	return c.JSON(http.StatusOK, banners)
}
