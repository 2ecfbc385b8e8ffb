package handlers

import (
	request "antenna_ops/internal/adapter/http/dto/request"
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/export"
	"antenna_ops/internal/usecase"
	"antenna_ops/pkg"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLetterPayload = pkg.NewDomainErrorSimple("INVALID_LETTER_INPUT", "Invalid letter payload", http.StatusBadRequest)
)

// LetterHandler handles the inbound correspondence log.
type LetterHandler struct {
	usecase  usecase.ILetterUseCase
	renderer *export.Renderer
}

func NewLetterHandler(uc usecase.ILetterUseCase, renderer *export.Renderer) *LetterHandler {
	return &LetterHandler{usecase: uc, renderer: renderer}
}

func (h *LetterHandler) ListLetters(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListLetters(c.Request.Context()))
}

func (h *LetterHandler) CreateLetter(c *gin.Context) {
	var payload entities.LetterDraft
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLetterPayload.HTTPStatus, errInvalidLetterPayload.ToHTTPError())
		return
	}
	letter, err := h.usecase.AddLetter(c.Request.Context(), payload)
	if err != nil {
		appErr := mapLetterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, letter)
}

func (h *LetterHandler) GetLetter(c *gin.Context) {
	letter, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLetterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, letter)
}

func (h *LetterHandler) UpdateLetter(c *gin.Context) {
	var payload entities.Letter
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLetterPayload.HTTPStatus, errInvalidLetterPayload.ToHTTPError())
		return
	}
	payload.ID = c.Param("id")
	letter, err := h.usecase.UpdateLetter(c.Request.Context(), payload)
	if err != nil {
		appErr := mapLetterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, letter)
}

func (h *LetterHandler) SetStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLetterPayload.HTTPStatus, errInvalidLetterPayload.ToHTTPError())
		return
	}
	letter, err := h.usecase.SetLetterStatus(c.Request.Context(), c.Param("id"), entities.LetterStatus(payload.Status))
	if err != nil {
		appErr := mapLetterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, letter)
}

func (h *LetterHandler) DeleteLetter(c *gin.Context) {
	if err := h.usecase.DeleteLetter(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapLetterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LetterHandler) LetterPDF(c *gin.Context) {
	letter, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLetterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	sendFile(c, contentTypePDF, "Letter-"+fileSafe(letter.Subject)+".pdf", func(w io.Writer) error {
		return h.renderer.WriteLetterPDF(w, letter)
	})
}

func mapLetterError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLetterID), errors.Is(err, usecase.ErrInvalidLetterStatus), errors.Is(err, usecase.ErrLetterFileRequired):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLetterNotFound):
		return pkg.NewDomainErrorSimple("LETTER_NOT_FOUND", "Letter not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
