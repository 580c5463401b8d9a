package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frontendlab/demo-backend/internal/hotel"
	"github.com/frontendlab/demo-backend/internal/pkg/request"
	"github.com/frontendlab/demo-backend/internal/pkg/response"
)

type Handler struct {
	service hotel.Service
}

func NewHandler(service hotel.Service) *Handler {
	return &Handler{service: service}
}

// List doubles as the search view: ?q= filters by name or location, an
// empty or absent query returns every hotel in collection order.
func (h *Handler) List(c *gin.Context) {
	hotels, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]HotelResponse, len(hotels))
	for i, ht := range hotels {
		items[i] = NewHotelResponse(ht)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.ID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ht, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewHotelResponse(ht))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateHotelBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ht, err := h.service.Create(c.Request.Context(), hotel.CreateRequest{
		Name:          body.Name,
		Location:      body.Location,
		Rating:        body.Rating,
		PricePerNight: body.PricePerNight,
		Image:         body.Image,
		Amenities:     body.Amenities,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewHotelResponse(ht))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := request.ID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var body UpdateHotelBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ht, err := h.service.Update(c.Request.Context(), id, hotel.UpdateRequest{
		Name:          body.Name,
		Location:      body.Location,
		Rating:        body.Rating,
		PricePerNight: body.PricePerNight,
		Image:         body.Image,
		Amenities:     body.Amenities,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewHotelResponse(ht))
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
