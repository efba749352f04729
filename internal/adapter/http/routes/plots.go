package routes

import (
	"plotsite/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathParcels   = "/parcels"
	PathLayouts   = "/layouts"
	PathSessions  = "/sessions"
	PathInquiries = "/inquiries"
)

func addPlotRoutes(rg *gin.RouterGroup, parcelHandler *handlers.ParcelHandler, layoutHandler *handlers.LayoutHandler) {
	parcels := rg.Group(PathParcels)
	{
		parcels.GET("", parcelHandler.ListParcels)
		parcels.GET("/summary", parcelHandler.GetSummary)
		parcels.GET("/:id", parcelHandler.GetParcel)
	}

	layouts := rg.Group(PathLayouts)
	{
		layouts.GET("", layoutHandler.ListModes)
		layouts.GET("/:mode", layoutHandler.GetLayout)
		layouts.GET("/:mode/svg", layoutHandler.RenderSVG)
		layouts.GET("/:mode/png", layoutHandler.RenderPNG)
	}
}

func addVisitorRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler, inquiryHandler *handlers.InquiryHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.Create)
		sessions.GET("/:id", sessionHandler.Get)
		sessions.POST("/:id/select", sessionHandler.Select)
		sessions.DELETE("/:id/selection", sessionHandler.Clear)
		sessions.POST("/:id/inquiry/open", sessionHandler.OpenInquiry)
		sessions.POST("/:id/inquiry/close", sessionHandler.CloseInquiry)
	}

	rg.POST(PathInquiries, inquiryHandler.Submit)
}
