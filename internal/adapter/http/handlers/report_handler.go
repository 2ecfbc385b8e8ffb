package handlers

import (
	request "antenna_ops/internal/adapter/http/dto/request"
	"antenna_ops/internal/export"
	"antenna_ops/internal/views"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard, the period report and the bulk CSV exports.
type ReportHandler struct {
	store       IStoreReader
	renderer    *export.Renderer
	recentFiles int
}

func NewReportHandler(store IStoreReader, renderer *export.Renderer, recentFiles int) *ReportHandler {
	if recentFiles <= 0 {
		recentFiles = views.DefaultRecentFilesLimit
	}
	return &ReportHandler{store: store, renderer: renderer, recentFiles: recentFiles}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, views.BuildDashboard(h.store.Snapshot(), h.recentFiles))
}

func (h *ReportHandler) Report(c *gin.Context) {
	rep, ok := h.buildReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (h *ReportHandler) ReportCSV(c *gin.Context) {
	rep, ok := h.buildReport(c)
	if !ok {
		return
	}
	sendFile(c, contentTypeCSV, h.reportName(rep)+".csv", func(w io.Writer) error {
		return export.WriteReportCSV(w, rep, h.store.Now())
	})
}

func (h *ReportHandler) ReportPDF(c *gin.Context) {
	rep, ok := h.buildReport(c)
	if !ok {
		return
	}
	sendFile(c, contentTypePDF, h.reportName(rep)+".pdf", func(w io.Writer) error {
		return h.renderer.WriteReportPDF(w, rep, h.store.Now())
	})
}

func (h *ReportHandler) ReportXLSX(c *gin.Context) {
	rep, ok := h.buildReport(c)
	if !ok {
		return
	}
	sendFile(c, contentTypeXLSX, h.reportName(rep)+".xlsx", func(w io.Writer) error {
		return export.WriteReportXLSX(w, rep, h.store.Now())
	})
}

func (h *ReportHandler) ContactsCSV(c *gin.Context) {
	name := "contacts_leads_export_" + h.store.Today().String() + ".csv"
	sendFile(c, contentTypeCSV, name, func(w io.Writer) error {
		return export.WriteContactsCSV(w, h.store.Snapshot().Contacts)
	})
}

func (h *ReportHandler) TrainingsCSV(c *gin.Context) {
	name := "training_history_" + h.store.Today().String() + ".csv"
	sendFile(c, contentTypeCSV, name, func(w io.Writer) error {
		return export.WriteTrainingHistoryCSV(w, h.store.Snapshot().Trainings)
	})
}

func (h *ReportHandler) OrdersCSV(c *gin.Context) {
	name := "pending_orders_" + h.store.Today().String() + ".csv"
	sendFile(c, contentTypeCSV, name, func(w io.Writer) error {
		return export.WriteOrdersCSV(w, h.store.Snapshot().Orders)
	})
}

func (h *ReportHandler) HistoryCSV(c *gin.Context) {
	name := "order_history_" + h.store.Today().String() + ".csv"
	sendFile(c, contentTypeCSV, name, func(w io.Writer) error {
		return export.WriteHistoryCSV(w, h.store.Snapshot().History)
	})
}

func (h *ReportHandler) buildReport(c *gin.Context) (views.Report, bool) {
	var q request.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return views.Report{}, false
	}
	period, err := views.ParsePeriod(q.Period)
	if err != nil {
		appErr := mapViewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return views.Report{}, false
	}
	rep, err := views.BuildReport(h.store.Snapshot(), period, h.store.Today())
	if err != nil {
		log.Printf("[report][handler] build failed period=%s err=%v", period, err)
		appErr := mapViewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return views.Report{}, false
	}
	return rep, true
}

func (h *ReportHandler) reportName(rep views.Report) string {
	return "report-" + strings.ToLower(string(rep.Period)) + "-" + rep.Today.String()
}
