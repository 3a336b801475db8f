package handlers

import (
	stderrors "errors"
	"net/http"

	"walletlink/internal/errors"
	"walletlink/internal/services"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the seeded icons and colors
type CatalogHandler struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogHandler(catalogService services.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// @Summary List colors
// @Tags Catalog
// @Security CookieAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Color}
// @Router /colors [get]
func (h *CatalogHandler) ListColors(c echo.Context) error {
	colors, err := h.catalogService.ListColors()
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Colors fetched successfully", colors)
}

// @Summary List icons
// @Tags Catalog
// @Security CookieAuth
// @Produce json
// @Param type query string false "account or category"
// @Success 200 {object} SuccessResponse{data=[]models.Icon}
// @Failure 400 {object} errors.ErrorResponse "CATALOG_003"
// @Failure 404 {object} errors.ErrorResponse "CATALOG_004"
// @Router /icons [get]
func (h *CatalogHandler) ListIcons(c echo.Context) error {
	icons, err := h.catalogService.ListIcons(c.QueryParam("type"))
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidIconType):
			return SendError(c, errors.CatalogInvalidIconType)
		case stderrors.Is(err, services.ErrNoIcons):
			return SendError(c, errors.CatalogNoIcons)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Icons fetched successfully", icons)
}
