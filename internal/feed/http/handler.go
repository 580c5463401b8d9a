package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frontendlab/demo-backend/internal/feed"
	"github.com/frontendlab/demo-backend/internal/pkg/request"
	"github.com/frontendlab/demo-backend/internal/pkg/response"
)

type Handler struct {
	service feed.Service
}

func NewHandler(service feed.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(NewPostResponses(posts)))
}

func (h *Handler) CreatePost(c *gin.Context) {
	var body CreatePostBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.CreatePost(c.Request.Context(), body.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewPostResponse(p))
}

func (h *Handler) EditPost(c *gin.Context) {
	id, err := request.ID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var body EditPostBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.EditPost(c.Request.Context(), id, body.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPostResponse(p))
}

func (h *Handler) DeletePost(c *gin.Context) {
	id, err := request.ID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ToggleLike(c *gin.Context) {
	id, err := request.ID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.service.ToggleLike(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPostResponse(p))
}

func (h *Handler) Comments(c *gin.Context) {
	id, err := request.ID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	comments, err := h.service.Comments(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, CommentsResponse{Comments: comments})
}

func (h *Handler) Friends(c *gin.Context) {
	members, err := h.service.Friends(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(NewMemberResponses(members)))
}

func (h *Handler) Suggestions(c *gin.Context) {
	members, err := h.service.Suggestions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(NewMemberResponses(members)))
}

func (h *Handler) ToggleFriend(c *gin.Context) {
	id, err := request.ID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	m, err := h.service.ToggleFriend(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewMemberResponse(m))
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{
		PostCount:   stats.PostCount,
		FriendCount: stats.FriendCount,
	})
}
