package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplabs/shop-api/internal/api/metrics"
	"github.com/shoplabs/shop-api/internal/core/domain"
	"github.com/shoplabs/shop-api/internal/core/ports"
)

// listCacheControl lets intermediaries cache the category list for a short window.
const listCacheControl = "public, max-age=30"

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List handles GET /v1/categories.
//
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   domain.Category
// @Failure      500  {object}  errorResponse
// @Router       /v1/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", listCacheControl)
	return c.JSON(http.StatusOK, categories)
}

// Get handles GET /v1/categories/:id. A missing id yields a 200 with a null
// body; clients are expected to treat null as absent.
//
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  domain.Category
// @Failure      500  {object}  errorResponse
// @Router       /v1/categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}

	category, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Create handles POST /v1/categories.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryCreateRequest  true  "Category"
// @Success      200   {object}  domain.Category
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.service.Create(c.Request().Context(), ports.CreateCategoryInput{Title: req.Title})
	if err != nil {
		return err
	}

	metrics.CategoryWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusOK, category)
}

// Update handles PUT /v1/categories/:id. The path id must match the body id;
// a mismatch is a 404, not a 400.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Category id"
// @Param        body  body      categoryUpdateRequest  true  "Category"
// @Success      200   {object}  domain.Category
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}

	var req categoryUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	// The id rule wins over payload validation: a mismatched body is not
	// found no matter what else is wrong with it.
	if req.ID != id {
		return domain.ErrCategoryNotFound
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.service.Update(c.Request().Context(), id, ports.UpdateCategoryInput{
		ID:    req.ID,
		Title: req.Title,
	})
	if err != nil {
		return err
	}

	metrics.CategoryWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /v1/categories/:id.
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.CategoryWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "category removed"})
}
