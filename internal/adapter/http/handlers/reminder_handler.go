package handlers

import (
	response "antenna_ops/internal/adapter/http/dto/response"
	"antenna_ops/internal/usecase"
	"antenna_ops/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReminderHandler triggers the daily reminder check on demand.
type ReminderHandler struct {
	usecase usecase.IReminderUseCase
	store   IStoreReader
}

func NewReminderHandler(uc usecase.IReminderUseCase, store IStoreReader) *ReminderHandler {
	return &ReminderHandler{usecase: uc, store: store}
}

// Check returns the notifications due today. Delivery failures are logged and the
// notifications are still returned, flagged with 207.
func (h *ReminderHandler) Check(c *gin.Context) {
	today := h.store.Today()
	due, err := h.usecase.CheckReminders(c.Request.Context(), today)
	if err != nil {
		log.Printf("[reminder][handler] delivery failed date=%s err=%v", today, err)
		if len(due) == 0 {
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusMultiStatus, response.FromNotifications(today, due))
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(today, due))
}
