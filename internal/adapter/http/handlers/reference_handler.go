package handlers

import (
	request "antenna_ops/internal/adapter/http/dto/request"
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase"
	"antenna_ops/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidMachineTypePayload = pkg.NewDomainErrorSimple("INVALID_MACHINE_TYPE_INPUT", "Invalid machine type payload", http.StatusBadRequest)
)

// ReferenceHandler serves the configurable machine type list and the fixed form lists.
type ReferenceHandler struct {
	usecase usecase.IMachineTypeUseCase
}

func NewReferenceHandler(uc usecase.IMachineTypeUseCase) *ReferenceHandler {
	return &ReferenceHandler{usecase: uc}
}

type ReferenceLists struct {
	MachineTypes       []string `json:"machineTypes"`
	TaskDepartments    []string `json:"taskDepartments"`
	TrainingTypes      []string `json:"trainingTypes"`
	TrainingCategories []string `json:"trainingCategories"`
}

func (h *ReferenceHandler) ListMachineTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListMachineTypes(c.Request.Context()))
}

func (h *ReferenceHandler) AddMachineType(c *gin.Context) {
	var payload request.MachineTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMachineTypePayload.HTTPStatus, errInvalidMachineTypePayload.ToHTTPError())
		return
	}
	types, err := h.usecase.AddMachineType(c.Request.Context(), payload.Name)
	if err != nil {
		appErr := mapMachineTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *ReferenceHandler) Lists(c *gin.Context) {
	c.JSON(http.StatusOK, ReferenceLists{
		MachineTypes:       h.usecase.ListMachineTypes(c.Request.Context()),
		TaskDepartments:    entities.TaskDepartments,
		TrainingTypes:      entities.TrainingTypes,
		TrainingCategories: entities.TrainingCategories,
	})
}

func mapMachineTypeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMachineType):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
