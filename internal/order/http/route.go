package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/orders")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.POST("/:id/advance-status", h.AdvanceStatus)
		group.DELETE("/:id", h.Delete)
	}
}
