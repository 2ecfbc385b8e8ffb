package handlers

import (
	request "antenna_ops/internal/adapter/http/dto/request"
	response "antenna_ops/internal/adapter/http/dto/response"
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/export"
	"antenna_ops/internal/usecase"
	"antenna_ops/internal/views"
	"antenna_ops/pkg"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload   = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// OrderHandler handles the order lifecycle, the pending delivery board and order history.
type OrderHandler struct {
	usecase  usecase.IOrderUseCase
	store    IStoreReader
	renderer *export.Renderer
}

func NewOrderHandler(uc usecase.IOrderUseCase, store IStoreReader, renderer *export.Renderer) *OrderHandler {
	return &OrderHandler{usecase: uc, store: store, renderer: renderer}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromOrders(h.usecase.ListOrders(c.Request.Context())))
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AddOrder(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateOrder replaces the editable fields of an active order. The path id wins over the body.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload entities.Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	payload.ID = c.Param("id")

	order, err := h.usecase.UpdateOrder(c.Request.Context(), payload)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) AddPayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	payment, err := payload.ToPayment()
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AddPayment(c.Request.Context(), c.Param("id"), payment)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) MarkAsReady(c *gin.Context) {
	order, err := h.usecase.MarkAsReady(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// CompleteOrder attaches the final documents and moves the order to history.
// An empty body completes without documents.
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	var payload request.CompleteOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CompleteOrder(c.Request.Context(), c.Param("id"), payload.ToDocuments())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// PendingDelivery lists active orders with their delivery countdown (?q=, ?sort=, ?dir=).
func (h *OrderHandler) PendingDelivery(c *gin.Context) {
	var q views.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	pending, err := views.PendingDelivery(h.usecase.ListOrders(c.Request.Context()), q, h.store.Today())
	if err != nil {
		appErr := mapViewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, pending)
}

func (h *OrderHandler) ListHistory(c *gin.Context) {
	history := views.SearchHistory(h.usecase.ListHistory(c.Request.Context()), c.Query("q"))
	c.JSON(http.StatusOK, response.FromOrders(history))
}

// Prefill builds a new order draft from a contact and/or a product.
func (h *OrderHandler) Prefill(c *gin.Context) {
	var q request.PrefillQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	snap := h.store.Snapshot()
	var draft entities.OrderDraft
	if q.ContactID != "" {
		contact, ok := findContact(snap.Contacts, q.ContactID)
		if !ok {
			appErr := mapContactError(usecase.ErrContactNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		draft = views.OrderFromContact(draft, contact)
	}
	if q.ProductID != "" {
		product, ok := findProduct(snap.Products, q.ProductID)
		if !ok {
			appErr := mapProductError(usecase.ErrProductNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		draft = views.OrderFromProduct(draft, product)
	}
	c.JSON(http.StatusOK, draft)
}

func (h *OrderHandler) OrderPDF(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	name := "Order-" + order.ID + ".pdf"
	if order.Status != entities.OrderStatusCompleted {
		name = "Pending-Order-" + order.ID + ".pdf"
	}
	log.Printf("[order][handler] pdf id=%s status=%s", order.ID, order.Status)
	sendFile(c, contentTypePDF, name, func(w io.Writer) error {
		return h.renderer.WriteOrderPDF(w, order)
	})
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentAmount), errors.Is(err, usecase.ErrInvalidPaymentDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidOrderTransition):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_TRANSITION", "Order cannot move to that status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapViewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, views.ErrInvalidSortKey), errors.Is(err, views.ErrInvalidSortDirection), errors.Is(err, views.ErrInvalidPeriod):
		return pkg.NewDomainError("INVALID_QUERY", "Invalid query parameters", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func findContact(contacts []entities.Contact, id string) (entities.Contact, bool) {
	for _, c := range contacts {
		if c.ID == id {
			return c, true
		}
	}
	return entities.Contact{}, false
}

func findProduct(products []entities.Product, id string) (entities.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Product{}, false
}
