package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frontendlab/demo-backend/internal/order"
	"github.com/frontendlab/demo-backend/internal/pkg/request"
	"github.com/frontendlab/demo-backend/internal/pkg/response"
)

type Handler struct {
	service order.Service
}

func NewHandler(service order.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]OrderViewResponse, len(views))
	for i, v := range views {
		items[i] = NewOrderViewResponse(v)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateOrderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	o, err := h.service.Create(c.Request.Context(), order.CreateRequest{
		UserID:    body.UserID,
		ProductID: body.ProductID,
		Quantity:  body.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewOrderResponse(o))
}

// AdvanceStatus steps the order along the fixed status cycle.
func (h *Handler) AdvanceStatus(c *gin.Context) {
	id, err := request.ID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.service.AdvanceStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(o))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := request.ID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
