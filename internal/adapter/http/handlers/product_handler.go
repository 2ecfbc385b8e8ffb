package handlers

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/export"
	"antenna_ops/internal/usecase"
	"antenna_ops/internal/views"
	"antenna_ops/pkg"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
)

// ProductHandler handles the product catalog and its taxonomy browser.
type ProductHandler struct {
	usecase  usecase.IProductUseCase
	renderer *export.Renderer
}

func NewProductHandler(uc usecase.IProductUseCase, renderer *export.Renderer) *ProductHandler {
	return &ProductHandler{usecase: uc, renderer: renderer}
}

// CatalogResponse is one catalog scope plus the spec filters available inside it.
type CatalogResponse struct {
	Products    []entities.Product  `json:"products"`
	SpecFilters map[string][]string `json:"specFilters"`
}

// ListProducts supports ?sector=, ?category= and ?itemGroup=.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var scope views.CatalogScope
	if err := c.ShouldBindQuery(&scope); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	products := views.ProductsInScope(h.usecase.ListProducts(c.Request.Context()), scope)
	c.JSON(http.StatusOK, CatalogResponse{Products: products, SpecFilters: views.SpecFilters(products)})
}

func (h *ProductHandler) Taxonomy(c *gin.Context) {
	c.JSON(http.StatusOK, views.Taxonomy(h.usecase.ListProducts(c.Request.Context())))
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload entities.Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}
	product, err := h.usecase.AddProduct(c.Request.Context(), payload)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var payload entities.Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}
	payload.ID = c.Param("id")
	product, err := h.usecase.UpdateProduct(c.Request.Context(), payload)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.usecase.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) ProductPDF(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	sendFile(c, contentTypePDF, "Product-"+fileSafe(product.Name)+".pdf", func(w io.Writer) error {
		return h.renderer.WriteProductPDF(w, product)
	})
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidProduct), errors.Is(err, usecase.ErrInvalidSector):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
