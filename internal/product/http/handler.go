package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frontendlab/demo-backend/internal/pkg/request"
	"github.com/frontendlab/demo-backend/internal/pkg/response"
	"github.com/frontendlab/demo-backend/internal/product"
)

type Handler struct {
	service product.Service
}

func NewHandler(service product.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	products, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = NewProductResponse(p)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.ID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(p))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), product.CreateRequest{
		Name:        body.Name,
		Category:    body.Category,
		Price:       body.Price,
		Stock:       body.Stock,
		Description: body.Description,
		Image:       body.Image,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := request.ID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var body UpdateProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, product.UpdateRequest{
		Name:        body.Name,
		Category:    body.Category,
		Price:       body.Price,
		Stock:       body.Stock,
		Description: body.Description,
		Image:       body.Image,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(p))
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
