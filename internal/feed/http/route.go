package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	posts := g.Group("/posts")
	{
		posts.GET("", h.ListPosts)
		posts.POST("", h.CreatePost)
		posts.PATCH("/:id", h.EditPost)
		posts.DELETE("/:id", h.DeletePost)
		posts.POST("/:id/toggle-like", h.ToggleLike)
		posts.GET("/:id/comments", h.Comments)
	}

	members := g.Group("/members")
	{
		members.GET("/friends", h.Friends)
		members.GET("/suggestions", h.Suggestions)
		members.POST("/:id/toggle-friend", h.ToggleFriend)
	}

	g.GET("/profile/stats", h.Stats)
}
