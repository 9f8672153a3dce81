package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplabs/shop-api/internal/api/metrics"
	"github.com/shoplabs/shop-api/internal/core/ports"
)

type productCreateRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=60"`
	Description string  `json:"description" validate:"max=1024"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	CategoryID  int     `json:"category_id" validate:"required,gt=0"`
}

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /v1/products. Categories are joined onto every item.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  errorResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /v1/products/:id. A missing id yields a 200 with a null
// body; clients are expected to treat null as absent.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      500  {object}  errorResponse
// @Router       /v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// ListByCategory handles GET /v1/products/categories/:id.
//
// @Summary      List products in a category
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Category id"
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  errorResponse
// @Router       /v1/products/categories/{id} [get]
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	categoryID, err := intParam(c, "id")
	if err != nil {
		return err
	}

	products, err := h.service.ListByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create handles POST /v1/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productCreateRequest  true  "Product"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, product)
}
