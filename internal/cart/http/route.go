package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/cart")
	{
		group.GET("", h.View)
		group.POST("/items", h.AddItem)
		group.DELETE("/items/:productId", h.RemoveItem)
		group.POST("/checkout", h.Checkout)
	}
}
