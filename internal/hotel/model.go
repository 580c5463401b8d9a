package hotel

import "github.com/frontendlab/demo-backend/internal/pkg/apperror"

var (
	ErrNotFound         = apperror.NotFound("hotel not found")
	ErrNameRequired     = apperror.Invalid("hotel name is required")
	ErrLocationRequired = apperror.Invalid("hotel location is required")
	ErrInvalidRating    = apperror.Invalid("rating must be between 1 and 5")
	ErrInvalidPrice     = apperror.Invalid("price per night must not be negative")
)

// Hotel is one bookable property in the booking demo.
type Hotel struct {
	ID            int
	Name          string
	Location      string
	Rating        int
	PricePerNight float64
	Image         string
	Amenities     []string
}
