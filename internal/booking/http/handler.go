package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frontendlab/demo-backend/internal/booking"
	"github.com/frontendlab/demo-backend/internal/pkg/request"
	"github.com/frontendlab/demo-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.ID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		HotelID:         body.HotelID,
		GuestName:       body.GuestName,
		GuestEmail:      body.GuestEmail,
		GuestPhone:      body.GuestPhone,
		CheckIn:         body.CheckIn,
		CheckOut:        body.CheckOut,
		Guests:          body.Guests,
		SpecialRequests: body.SpecialRequests,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// Quote implements the live price preview of the booking modal. Invalid
// date pairs come back with valid=false so the caller keeps showing the
// last good numbers.
func (h *Handler) Quote(c *gin.Context) {
	var body QuoteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	q, err := h.service.Quote(c.Request.Context(), body.HotelID, body.CheckIn, body.CheckOut)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, QuoteResponse{
		Valid:      q.Valid,
		Nights:     q.Nights,
		TotalPrice: q.TotalPrice,
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := request.ID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var body UpdateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, booking.UpdateRequest{
		GuestName:       body.GuestName,
		GuestEmail:      body.GuestEmail,
		GuestPhone:      body.GuestPhone,
		CheckIn:         body.CheckIn,
		CheckOut:        body.CheckOut,
		Guests:          body.Guests,
		SpecialRequests: body.SpecialRequests,
		Status:          body.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := request.ID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
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
