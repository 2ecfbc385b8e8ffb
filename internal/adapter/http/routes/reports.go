package routes

import (
	"antenna_ops/internal/adapter/http/handlers"
	"antenna_ops/internal/infrastructure/notify"

	"github.com/gin-gonic/gin"
)

const (
	PathDashboard     = "/dashboard"
	PathReports       = "/reports"
	PathExports       = "/exports"
	PathReminders     = "/reminders"
	PathNotifications = "/notifications"
)

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	rg.GET(PathDashboard, reportHandler.Dashboard)

	reports := rg.Group(PathReports)
	{
		reports.GET("", reportHandler.Report)
		reports.GET("/export.csv", reportHandler.ReportCSV)
		reports.GET("/export.pdf", reportHandler.ReportPDF)
		reports.GET("/export.xlsx", reportHandler.ReportXLSX)
	}

	exports := rg.Group(PathExports)
	{
		exports.GET("/contacts.csv", reportHandler.ContactsCSV)
		exports.GET("/trainings.csv", reportHandler.TrainingsCSV)
		exports.GET("/orders.csv", reportHandler.OrdersCSV)
		exports.GET("/history.csv", reportHandler.HistoryCSV)
	}
}

// addNotificationRoutes mounts the reminder check and, when the hub is live, its websocket.
func addNotificationRoutes(rg *gin.RouterGroup, reminderHandler *handlers.ReminderHandler, hub *notify.Hub) {
	rg.POST(PathReminders+"/check", reminderHandler.Check)
	if hub != nil {
		rg.GET(PathNotifications+"/ws", gin.WrapH(hub))
	}
}
