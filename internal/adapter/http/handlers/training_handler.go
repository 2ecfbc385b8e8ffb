package handlers

import (
	request "antenna_ops/internal/adapter/http/dto/request"
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
	errInvalidTrainingPayload    = pkg.NewDomainErrorSimple("INVALID_TRAINING_INPUT", "Invalid training payload", http.StatusBadRequest)
	errInvalidCertificatePayload = pkg.NewDomainErrorSimple("INVALID_CERTIFICATE_INPUT", "Invalid certificate payload", http.StatusBadRequest)
)

// TrainingHandler handles course registrations and their certificates.
type TrainingHandler struct {
	usecase  usecase.ITrainingUseCase
	store    IStoreReader
	renderer *export.Renderer
}

func NewTrainingHandler(uc usecase.ITrainingUseCase, store IStoreReader, renderer *export.Renderer) *TrainingHandler {
	return &TrainingHandler{usecase: uc, store: store, renderer: renderer}
}

// ListTrainings supports ?tab=registration|history, ?q=, ?sort=name|trainingType|dueDate and ?dir=.
func (h *TrainingHandler) ListTrainings(c *gin.Context) {
	var f views.TrainingFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	trainings, err := views.SearchTrainings(h.usecase.ListTrainings(c.Request.Context()), f)
	if err != nil {
		appErr := mapViewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, trainings)
}

func (h *TrainingHandler) CreateTraining(c *gin.Context) {
	var payload entities.TrainingDraft
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTrainingPayload.HTTPStatus, errInvalidTrainingPayload.ToHTTPError())
		return
	}
	training, err := h.usecase.AddTraining(c.Request.Context(), payload)
	if err != nil {
		appErr := mapTrainingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, training)
}

func (h *TrainingHandler) GetTraining(c *gin.Context) {
	training, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTrainingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, training)
}

func (h *TrainingHandler) UpdateTraining(c *gin.Context) {
	var payload entities.Training
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTrainingPayload.HTTPStatus, errInvalidTrainingPayload.ToHTTPError())
		return
	}
	payload.ID = c.Param("id")
	training, err := h.usecase.UpdateTraining(c.Request.Context(), payload)
	if err != nil {
		appErr := mapTrainingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, training)
}

func (h *TrainingHandler) CompleteTraining(c *gin.Context) {
	var payload request.CompleteTrainingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCertificatePayload.HTTPStatus, errInvalidCertificatePayload.ToHTTPError())
		return
	}
	cert, err := payload.ToCertificate()
	if err != nil {
		appErr := pkg.NewDomainError(errInvalidCertificatePayload.Code, errInvalidCertificatePayload.Message, err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	training, err := h.usecase.CompleteTraining(c.Request.Context(), c.Param("id"), cert)
	if err != nil {
		appErr := mapTrainingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, training)
}

func (h *TrainingHandler) DeleteTraining(c *gin.Context) {
	if err := h.usecase.DeleteTraining(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTrainingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// Prefill starts a registration from a catalog product.
func (h *TrainingHandler) Prefill(c *gin.Context) {
	var q request.TrainingPrefillQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	product, ok := findProduct(h.store.Snapshot().Products, q.ProductID)
	if !ok {
		appErr := mapProductError(usecase.ErrProductNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, views.TrainingFromProduct(entities.TrainingDraft{}, product))
}

func (h *TrainingHandler) TrainingPDF(c *gin.Context) {
	training, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTrainingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	sendFile(c, contentTypePDF, "Training-"+fileSafe(training.Name)+".pdf", func(w io.Writer) error {
		return h.renderer.WriteTrainingPDF(w, training)
	})
}

// Certificate renders a generated certificate, or returns the uploaded file as stored.
func (h *TrainingHandler) Certificate(c *gin.Context) {
	training, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTrainingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if training.Certificate.Kind == entities.CertificateUploaded {
		data, mime, err := training.Certificate.File.Decode()
		if err != nil {
			appErr := pkg.NewDomainError("INVALID_CERTIFICATE_FILE", "Stored certificate cannot be decoded", err, http.StatusUnprocessableEntity)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Data(http.StatusOK, mime, data)
		return
	}
	view, err := export.NewCertificateView(training, h.store.Today())
	if err != nil {
		appErr := pkg.NewDomainError("CERTIFICATE_NOT_FOUND", "Training has no certificate", err, http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	sendFile(c, contentTypePDF, "Certificate-"+fileSafe(training.Name)+".pdf", func(w io.Writer) error {
		return h.renderer.WriteCertificatePDF(w, view)
	})
}

func mapTrainingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTrainingID), errors.Is(err, usecase.ErrInvalidCertificate):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTrainingNotFound):
		return pkg.NewDomainErrorSimple("TRAINING_NOT_FOUND", "Training not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTrainingTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRAINING_TRANSITION", "Training is already completed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
