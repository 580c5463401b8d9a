package booking

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/frontendlab/demo-backend/internal/hotel"
)

type CreateRequest struct {
	HotelID         int
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckIn         string
	CheckOut        string
	Guests          int
	SpecialRequests string
}

type UpdateRequest struct {
	GuestName       *string
	GuestEmail      *string
	GuestPhone      *string
	CheckIn         *string
	CheckOut        *string
	Guests          *int
	SpecialRequests *string
	Status          *string
}

// Quote is the live price preview shown while dates are being edited. An
// invalid date pair yields Valid=false and zero derived values; the caller
// keeps whatever it displayed last instead of regressing.
type Quote struct {
	Valid      bool
	Nights     int
	TotalPrice float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	// List returns bookings sorted by booking date, newest first,
	// regardless of storage order.
	List(ctx context.Context) ([]*Booking, error)
	Quote(ctx context.Context, hotelID int, checkIn, checkOut string) (*Quote, error)
	Update(ctx context.Context, id int, req UpdateRequest) (*Booking, error)
	Cancel(ctx context.Context, id int) (*Booking, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo         Repository
	hotelService hotel.Service
}

func NewService(repo Repository, hotelService hotel.Service) Service {
	return &service{
		repo:         repo,
		hotelService: hotelService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if strings.TrimSpace(req.GuestName) == "" {
		return nil, ErrGuestNameRequired
	}
	if strings.TrimSpace(req.GuestEmail) == "" {
		return nil, ErrGuestEmailRequired
	}
	if strings.TrimSpace(req.GuestPhone) == "" {
		return nil, ErrGuestPhoneRequired
	}
	if req.Guests < 1 {
		return nil, ErrInvalidGuests
	}

	n, err := stayNights(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	h, err := s.hotelService.GetByID(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, hotel.ErrNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	b := &Booking{
		HotelID:         h.ID,
		HotelName:       h.Name,
		HotelLocation:   h.Location,
		PricePerNight:   h.PricePerNight,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          req.Guests,
		Nights:          n,
		TotalPrice:      h.PricePerNight * float64(n),
		SpecialRequests: req.SpecialRequests,
		Status:          StatusConfirmed,
		BookingDate:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Booking, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].BookingDate.After(bookings[j].BookingDate)
	})
	return bookings, nil
}

func (s *service) Quote(ctx context.Context, hotelID int, checkIn, checkOut string) (*Quote, error) {
	h, err := s.hotelService.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, hotel.ErrNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	n, err := stayNights(checkIn, checkOut)
	if err != nil {
		// The date pair is malformed or non-positive: no recompute, the
		// previously shown values stand.
		return &Quote{Valid: false}, nil
	}

	return &Quote{
		Valid:      true,
		Nights:     n,
		TotalPrice: h.PricePerNight * float64(n),
	}, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.GuestName != nil && strings.TrimSpace(*req.GuestName) == "" {
		return nil, ErrGuestNameRequired
	}
	if req.GuestEmail != nil && strings.TrimSpace(*req.GuestEmail) == "" {
		return nil, ErrGuestEmailRequired
	}
	if req.GuestPhone != nil && strings.TrimSpace(*req.GuestPhone) == "" {
		return nil, ErrGuestPhoneRequired
	}
	if req.Guests != nil && *req.Guests < 1 {
		return nil, ErrInvalidGuests
	}

	// Work out the resulting date pair up front. A patch producing an
	// invalid stay is rejected whole, so derived fields never go stale.
	newCheckIn := b.CheckIn
	newCheckOut := b.CheckOut
	datesChanged := false
	if req.CheckIn != nil {
		newCheckIn = *req.CheckIn
		datesChanged = true
	}
	if req.CheckOut != nil {
		newCheckOut = *req.CheckOut
		datesChanged = true
	}

	newNights := b.Nights
	if datesChanged {
		newNights, err = stayNights(newCheckIn, newCheckOut)
		if err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		st := Status(*req.Status)
		if st != StatusConfirmed && st != StatusCancelled {
			return nil, ErrInvalidStatus
		}
	}

	return s.repo.Update(ctx, id, func(b Booking) Booking {
		if req.GuestName != nil {
			b.GuestName = *req.GuestName
		}
		if req.GuestEmail != nil {
			b.GuestEmail = *req.GuestEmail
		}
		if req.GuestPhone != nil {
			b.GuestPhone = *req.GuestPhone
		}
		if req.Guests != nil {
			b.Guests = *req.Guests
		}
		if req.SpecialRequests != nil {
			b.SpecialRequests = *req.SpecialRequests
		}
		if req.Status != nil {
			b.Status = Status(*req.Status)
		}
		if datesChanged {
			b.CheckIn = newCheckIn
			b.CheckOut = newCheckOut
			b.Nights = newNights
			b.TotalPrice = b.PricePerNight * float64(newNights)
		}
		return b
	})
}

func (s *service) Cancel(ctx context.Context, id int) (*Booking, error) {
	return s.repo.Update(ctx, id, func(b Booking) Booking {
		b.Status = StatusCancelled
		return b
	})
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
