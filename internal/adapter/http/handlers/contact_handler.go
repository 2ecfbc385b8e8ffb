package handlers

import (
	request "antenna_ops/internal/adapter/http/dto/request"
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase"
	"antenna_ops/internal/views"
	"antenna_ops/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Invalid contact payload", http.StatusBadRequest)
)

// ContactHandler handles customers and sales leads.
type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

// ListContacts supports ?q=, ?leads=true, ?sort=name|status and ?dir=.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	var f views.ContactFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	contacts, err := views.SearchContacts(h.usecase.ListContacts(c.Request.Context()), f)
	if err != nil {
		appErr := mapViewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// Lookup backs the customer autocomplete of the order form.
func (h *ContactHandler) Lookup(c *gin.Context) {
	var q request.LookupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, views.LookupContacts(h.usecase.ListContacts(c.Request.Context()), q.Query))
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var payload entities.Contact
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
		return
	}
	contact, err := h.usecase.AddContact(c.Request.Context(), payload)
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	contact, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) UpdateContact(c *gin.Context) {
	var payload entities.Contact
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
		return
	}
	payload.ID = c.Param("id")
	contact, err := h.usecase.UpdateContact(c.Request.Context(), payload)
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	if err := h.usecase.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapContactError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContactID), errors.Is(err, usecase.ErrInvalidContact), errors.Is(err, usecase.ErrInvalidLeadStatus):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
