package booking

import (
	"time"

	"github.com/frontendlab/demo-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.NotFound("booking not found")
	ErrHotelNotFound      = apperror.NotFound("hotel not found")
	ErrGuestNameRequired  = apperror.Invalid("guest name is required")
	ErrGuestEmailRequired = apperror.Invalid("guest email is required")
	ErrGuestPhoneRequired = apperror.Invalid("guest phone is required")
	ErrInvalidGuests      = apperror.Invalid("guest count must be at least 1")
	ErrInvalidDate        = apperror.Invalid("dates must use the YYYY-MM-DD format")
	ErrInvalidStay        = apperror.Invalid("check-out must be after check-in")
	ErrInvalidStatus      = apperror.Invalid("invalid booking status")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// DateLayout is the calendar-date format used for check-in/check-out.
const DateLayout = "2006-01-02"

// Booking is one reservation. Hotel name, location and nightly price are
// copied from the hotel at creation time; renaming or repricing the hotel
// afterwards does not change existing bookings.
//
// Nights and TotalPrice are derived: they always equal the pure function of
// (CheckIn, CheckOut, PricePerNight) and are recomputed whenever the date
// pair changes.
type Booking struct {
	ID              int
	HotelID         int
	HotelName       string
	HotelLocation   string
	PricePerNight   float64
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckIn         string
	CheckOut        string
	Guests          int
	Nights          int
	TotalPrice      float64
	SpecialRequests string
	Status          Status
	BookingDate     time.Time
}

// Nights returns the whole-day difference between the two calendar dates.
// A non-positive result means the pair is not a valid stay.
func nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// stayNights parses a date pair and returns the number of nights.
// It fails on malformed dates or a non-positive stay length.
func stayNights(checkIn, checkOut string) (int, error) {
	in, err := parseDate(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := parseDate(checkOut)
	if err != nil {
		return 0, err
	}
	n := nights(in, out)
	if n <= 0 {
		return 0, ErrInvalidStay
	}
	return n, nil
}
