package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/utilize/marketplace-api/internal/core/domain"
	"github.com/utilize/marketplace-api/internal/core/ports"
)

// CatalogHandler handles HTTP requests for categories and products.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Categories handles GET /categories.
//
// @Summary      List categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Category
// @Router       /categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.service.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return c.JSON(http.StatusOK, categories)
}

// ProductsByCategory handles GET /categories/:id.
//
// @Summary      List products in a category
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Category id"
// @Success      200  {array}   domain.Product
// @Router       /categories/{id} [get]
func (h *CatalogHandler) ProductsByCategory(c echo.Context) error {
	var req categoryParam
	if err := bindPath(c, &req); err != nil {
		return err
	}

	products, err := h.service.ProductsByCategory(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNilProducts(products))
}

// Advertised handles GET /advertise.
//
// @Summary      List advertised products
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Product
// @Router       /advertise [get]
func (h *CatalogHandler) Advertised(c echo.Context) error {
	products, err := h.service.AdvertisedProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNilProducts(products))
}

// CreateProduct handles POST /product.
//
// @Summary      Post a product
// @Tags         seller
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /product [post]
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	email, err := principalEmail(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.service.CreateProduct(c.Request().Context(), toProduct(req, email))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, successResponse{Success: true, Result: res})
}

// ProductsBySeller handles GET /products/:name.
//
// @Summary      List a seller's products
// @Tags         seller
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Seller name"
// @Success      200   {array}   domain.Product
// @Failure      403   {object}  map[string]string
// @Router       /products/{name} [get]
func (h *CatalogHandler) ProductsBySeller(c echo.Context) error {
	var req sellerParam
	if err := bindPath(c, &req); err != nil {
		return err
	}

	products, err := h.service.ProductsBySeller(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNilProducts(products))
}

// DeleteProduct handles DELETE /products/:id.
//
// @Summary      Delete a product
// @Tags         seller
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ObjectID"
// @Success      200  {object}  domain.WriteResult
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	var req idParam
	if err := bindPath(c, &req); err != nil {
		return err
	}

	res, err := h.service.DeleteProduct(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Advertise handles PUT /makeAdvertise/:id.
//
// @Summary      Advertise a product
// @Tags         seller
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ObjectID"
// @Success      200  {object}  domain.WriteResult
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /makeAdvertise/{id} [put]
func (h *CatalogHandler) Advertise(c echo.Context) error {
	var req idParam
	if err := bindPath(c, &req); err != nil {
		return err
	}

	res, err := h.service.Advertise(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func nonNilProducts(p []domain.Product) []domain.Product {
	if p == nil {
		return []domain.Product{}
	}
	return p
}
