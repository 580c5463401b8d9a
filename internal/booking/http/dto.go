package http

import (
	"time"

	"github.com/frontendlab/demo-backend/internal/booking"
)

type BookingResponse struct {
	ID              int       `json:"id"`
	HotelID         int       `json:"hotel_id"`
	HotelName       string    `json:"hotel_name"`
	HotelLocation   string    `json:"hotel_location"`
	PricePerNight   float64   `json:"price_per_night"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	Guests          int       `json:"guests"`
	Nights          int       `json:"nights"`
	TotalPrice      float64   `json:"total_price"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	Status          string    `json:"status"`
	BookingDate     time.Time `json:"booking_date"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		HotelID:         b.HotelID,
		HotelName:       b.HotelName,
		HotelLocation:   b.HotelLocation,
		PricePerNight:   b.PricePerNight,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		Nights:          b.Nights,
		TotalPrice:      b.TotalPrice,
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		BookingDate:     b.BookingDate,
	}
}

type CreateBookingBody struct {
	HotelID         int    `json:"hotel_id" binding:"required"`
	GuestName       string `json:"guest_name" binding:"required"`
	GuestEmail      string `json:"guest_email" binding:"required,email"`
	GuestPhone      string `json:"guest_phone" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	Guests          int    `json:"guests" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
}

type UpdateBookingBody struct {
	GuestName       *string `json:"guest_name"`
	GuestEmail      *string `json:"guest_email" binding:"omitempty,email"`
	GuestPhone      *string `json:"guest_phone"`
	CheckIn         *string `json:"check_in"`
	CheckOut        *string `json:"check_out"`
	Guests          *int    `json:"guests" binding:"omitempty,min=1"`
	SpecialRequests *string `json:"special_requests"`
	Status          *string `json:"status" binding:"omitempty,oneof=confirmed cancelled"`
}

type QuoteBody struct {
	HotelID  int    `json:"hotel_id" binding:"required"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type QuoteResponse struct {
	Valid      bool    `json:"valid"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
}
