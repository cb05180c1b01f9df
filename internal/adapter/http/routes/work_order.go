package routes

import (
	"workorder_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWorkOrders = "/work-orders"

func addWorkOrderRoutes(rg *gin.RouterGroup, handler *handlers.WorkOrderHandler, auth gin.HandlerFunc) {
	orders := rg.Group(PathWorkOrders, auth)
	{
		orders.POST("", handler.Create)
		orders.GET("", handler.List)
		orders.GET("/:id", handler.Get)
		orders.DELETE("/:id", handler.Delete)

		orders.POST("/:id/parts", handler.AddPart)
		orders.DELETE("/:id/parts/:index", handler.RemovePart)
		orders.POST("/:id/labor", handler.AddLabor)
		orders.POST("/:id/charges", handler.AddCharge)

		orders.POST("/:id/estimate", handler.ProposeEstimate)
		orders.PATCH("/:id/estimate/accept", handler.AcceptEstimate)
		orders.PATCH("/:id/estimate/reject", handler.RejectEstimate)

		orders.PATCH("/:id/schedule", handler.Schedule)
		orders.PATCH("/:id/start", handler.StartWork)
		orders.PATCH("/:id/complete", handler.MarkComplete)

		orders.POST("/:id/payments", handler.RecordPayment)

		orders.POST("/:id/photos", handler.AddPhoto)
		orders.POST("/:id/photos/upload", handler.UploadPhoto)
		orders.POST("/:id/messages", handler.PostMessage)

		orders.GET("/:id/invoice", handler.Invoice)
	}
}
