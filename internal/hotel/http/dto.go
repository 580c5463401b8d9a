package http

import "github.com/frontendlab/demo-backend/internal/hotel"

type HotelResponse struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Rating        int      `json:"rating"`
	PricePerNight float64  `json:"price_per_night"`
	Image         string   `json:"image,omitempty"`
	Amenities     []string `json:"amenities"`
}

func NewHotelResponse(h *hotel.Hotel) HotelResponse {
	amenities := h.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return HotelResponse{
		ID:            h.ID,
		Name:          h.Name,
		Location:      h.Location,
		Rating:        h.Rating,
		PricePerNight: h.PricePerNight,
		Image:         h.Image,
		Amenities:     amenities,
	}
}

type CreateHotelBody struct {
	Name          string   `json:"name" binding:"required"`
	Location      string   `json:"location" binding:"required"`
	Rating        int      `json:"rating" binding:"required,min=1,max=5"`
	PricePerNight float64  `json:"price_per_night" binding:"min=0"`
	Image         string   `json:"image"`
	Amenities     []string `json:"amenities"`
}

type UpdateHotelBody struct {
	Name          *string   `json:"name"`
	Location      *string   `json:"location"`
	Rating        *int      `json:"rating" binding:"omitempty,min=1,max=5"`
	PricePerNight *float64  `json:"price_per_night" binding:"omitempty,min=0"`
	Image         *string   `json:"image"`
	Amenities     *[]string `json:"amenities"`
}
