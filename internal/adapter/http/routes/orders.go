package routes

import (
	"antenna_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders  = "/orders"
	PathHistory = "/history"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/pending-delivery", orderHandler.PendingDelivery)
		orders.GET("/prefill", orderHandler.Prefill)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.UpdateOrder)
		orders.POST("/:id/payments", orderHandler.AddPayment)
		orders.PATCH("/:id/ready", orderHandler.MarkAsReady)
		orders.PATCH("/:id/complete", orderHandler.CompleteOrder)
		orders.GET("/:id/pdf", orderHandler.OrderPDF)
	}

	rg.GET(PathHistory, orderHandler.ListHistory)
}
