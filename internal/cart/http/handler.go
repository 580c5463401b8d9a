package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frontendlab/demo-backend/internal/cart"
	"github.com/frontendlab/demo-backend/internal/pkg/request"
	"github.com/frontendlab/demo-backend/internal/pkg/response"
)

type Handler struct {
	service cart.Service
}

func NewHandler(service cart.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) View(c *gin.Context) {
	v, err := h.service.View(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewViewResponse(v))
}

func (h *Handler) AddItem(c *gin.Context) {
	var body AddItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), body.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewItemResponse(*item))
}

func (h *Handler) RemoveItem(c *gin.Context) {
	productID, err := request.IDParam(c, "productId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.RemoveItem(c.Request.Context(), productID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Checkout(c *gin.Context) {
	total, err := h.service.Checkout(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, CheckoutResponse{Total: total})
}
