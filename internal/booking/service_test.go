package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontendlab/demo-backend/internal/hotel"
	"github.com/frontendlab/demo-backend/internal/pkg/memstore"
)

func newBookingCollection() *memstore.Collection[Booking] {
	return memstore.NewCollection(
		func(b Booking) int { return b.ID },
		func(b Booking, id int) Booking { b.ID = id; return b },
	)
}

func newHotelService(t *testing.T) (hotel.Service, *hotel.Hotel) {
	t.Helper()
	hotels := memstore.NewCollection(
		func(h hotel.Hotel) int { return h.ID },
		func(h hotel.Hotel, id int) hotel.Hotel { h.ID = id; return h },
	)
	svc := hotel.NewService(hotel.NewMemRepository(hotels))
	h, err := svc.Create(context.Background(), hotel.CreateRequest{
		Name:          "Grand Plaza Hotel",
		Location:      "New York, NY",
		Rating:        5,
		PricePerNight: 100,
	})
	require.NoError(t, err)
	return svc, h
}

func validCreateRequest(hotelID int) CreateRequest {
	return CreateRequest{
		HotelID:    hotelID,
		GuestName:  "Jane Roe",
		GuestEmail: "jane@example.com",
		GuestPhone: "555-0101",
		CheckIn:    "2024-01-01",
		CheckOut:   "2024-01-04",
		Guests:     2,
	}
}

func TestCreateComputesDerivedFields(t *testing.T) {
	hotelSvc, h := newHotelService(t)
	svc := NewService(NewMemRepository(newBookingCollection()), hotelSvc)

	b, err := svc.Create(context.Background(), validCreateRequest(h.ID))
	require.NoError(t, err)

	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, 300.0, b.TotalPrice)
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, "Grand Plaza Hotel", b.HotelName)
	assert.Equal(t, "New York, NY", b.HotelLocation)
	assert.False(t, b.BookingDate.IsZero())
}

func TestCreateRejectsInvalidStay(t *testing.T) {
	hotelSvc, h := newHotelService(t)
	repo := NewMemRepository(newBookingCollection())
	svc := NewService(repo, hotelSvc)

	req := validCreateRequest(h.ID)
	req.CheckIn = "2024-01-04"
	req.CheckOut = "2024-01-01"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidStay)

	bookings, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings, "rejected create must not mutate the store")
}

func TestCreateRejectsMissingHotel(t *testing.T) {
	hotelSvc, _ := newHotelService(t)
	svc := NewService(NewMemRepository(newBookingCollection()), hotelSvc)

	_, err := svc.Create(context.Background(), validCreateRequest(999))
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestHotelRenameDoesNotTouchExistingBookings(t *testing.T) {
	hotelSvc, h := newHotelService(t)
	svc := NewService(NewMemRepository(newBookingCollection()), hotelSvc)

	b, err := svc.Create(context.Background(), validCreateRequest(h.ID))
	require.NoError(t, err)

	newName := "Renamed Plaza"
	_, err = hotelSvc.Update(context.Background(), h.ID, hotel.UpdateRequest{Name: &newName})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grand Plaza Hotel", got.HotelName,
		"hotel name is copied at booking time")
}

func TestQuoteInvalidDatesKeepsLastGoodValues(t *testing.T) {
	hotelSvc, h := newHotelService(t)
	svc := NewService(NewMemRepository(newBookingCollection()), hotelSvc)
	ctx := context.Background()

	q, err := svc.Quote(ctx, h.ID, "2024-01-01", "2024-01-04")
	require.NoError(t, err)
	assert.True(t, q.Valid)
	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, 300.0, q.TotalPrice)

	// Reversed pair: no recompute signalled, caller keeps showing 3/300.
	q, err = svc.Quote(ctx, h.ID, "2024-01-04", "2024-01-01")
	require.NoError(t, err)
	assert.False(t, q.Valid)

	// Malformed date behaves the same way.
	q, err = svc.Quote(ctx, h.ID, "not-a-date", "2024-01-04")
	require.NoError(t, err)
	assert.False(t, q.Valid)
}

func TestUpdateRecomputesDerivedFieldsOnDateChange(t *testing.T) {
	hotelSvc, h := newHotelService(t)
	svc := NewService(NewMemRepository(newBookingCollection()), hotelSvc)
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest(h.ID))
	require.NoError(t, err)

	newOut := "2024-01-06"
	updated, err := svc.Update(ctx, b.ID, UpdateRequest{CheckOut: &newOut})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Nights)
	assert.Equal(t, 500.0, updated.TotalPrice)
}

func TestUpdateRejectsStaleDerivedState(t *testing.T) {
	hotelSvc, h := newHotelService(t)
	svc := NewService(NewMemRepository(newBookingCollection()), hotelSvc)
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest(h.ID))
	require.NoError(t, err)

	badOut := "2023-12-31"
	_, err = svc.Update(ctx, b.ID, UpdateRequest{CheckOut: &badOut})
	assert.ErrorIs(t, err, ErrInvalidStay)

	got, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Nights, "rejected patch leaves derived values intact")
	assert.Equal(t, "2024-01-04", got.CheckOut)
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	hotelSvc, h := newHotelService(t)
	svc := NewService(NewMemRepository(newBookingCollection()), hotelSvc)
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest(h.ID))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, b.ID, UpdateRequest{})
	require.NoError(t, err)
	assert.Equal(t, *b, *updated)
}

func TestListSortsByBookingDateDescending(t *testing.T) {
	hotelSvc, _ := newHotelService(t)
	repo := NewMemRepository(newBookingCollection())
	svc := NewService(repo, hotelSvc)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, offset := range []time.Duration{0, 48 * time.Hour, 24 * time.Hour} {
		b := &Booking{
			HotelID:     1,
			GuestName:   "Guest",
			CheckIn:     "2024-07-01",
			CheckOut:    "2024-07-02",
			Nights:      1,
			Status:      StatusConfirmed,
			BookingDate: base.Add(offset),
		}
		require.NoError(t, repo.Create(ctx, b), "booking %d", i)
	}

	bookings, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.True(t, bookings[0].BookingDate.After(bookings[1].BookingDate))
	assert.True(t, bookings[1].BookingDate.After(bookings[2].BookingDate))
}

func TestCancelMarksBookingCancelled(t *testing.T) {
	hotelSvc, h := newHotelService(t)
	svc := NewService(NewMemRepository(newBookingCollection()), hotelSvc)
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest(h.ID))
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
}

func TestDeleteThenGetReportsNotFound(t *testing.T) {
	hotelSvc, h := newHotelService(t)
	svc := NewService(NewMemRepository(newBookingCollection()), hotelSvc)
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest(h.ID))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, b.ID))
	_, err = svc.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again stays a silent no-op.
	assert.NoError(t, svc.Delete(ctx, b.ID))
}
