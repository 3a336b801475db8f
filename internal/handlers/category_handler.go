package handlers

import (
	stderrors "errors"
	"net/http"

	"walletlink/internal/dto"
	"walletlink/internal/errors"
	"walletlink/internal/models"
	"walletlink/internal/services"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory creates a category, optionally shared with the family
// @Summary Create a category
// @Tags Categories
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} SuccessResponse{data=models.Category}
// @Failure 404 {object} errors.ErrorResponse "CATALOG_001 or CATALOG_002"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.CreateCategory(actor, &req)
	if err != nil {
		return sendCategoryError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, "Category created successfully", category)
}

// ListCategories returns the caller's own categories and those shared in the family
// @Summary List visible categories
// @Tags Categories
// @Security CookieAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Category}
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categories, err := h.categoryService.ListCategories(actor)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Categories fetched successfully", categories)
}

// @Summary Update a category
// @Tags Categories
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Changes"
// @Success 200 {object} SuccessResponse{data=models.Category}
// @Failure 403 {object} errors.ErrorResponse "CATEGORY_002"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001"
// @Router /categories/{id} [post]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.UpdateCategory(actor, categoryID, &req)
	if err != nil {
		return sendCategoryError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Category updated successfully", category)
}

// @Summary Delete a category
// @Tags Categories
// @Security CookieAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} SuccessResponse
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_003"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	if err := h.categoryService.DeleteCategory(actor, categoryID); err != nil {
		return sendCategoryError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Category deleted successfully", nil)
}

// Missing decorations on a category are reported as 404, unlike on accounts.
func sendCategoryError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, errors.CategoryNotFound)
	case stderrors.Is(err, services.ErrCategoryNotAccessible):
		return SendError(c, errors.CategoryNotAccessible)
	case stderrors.Is(err, services.ErrCategoryHasTransactions):
		return SendError(c, errors.CategoryHasTransactions)
	case stderrors.Is(err, services.ErrIconNotFound):
		return SendError(c, errors.CatalogIconNotFound, errors.WithStatus(http.StatusNotFound))
	case stderrors.Is(err, services.ErrColorNotFound):
		return SendError(c, errors.CatalogColorNotFound, errors.WithStatus(http.StatusNotFound))
	case stderrors.Is(err, models.ErrCategoryNameRequired):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}
