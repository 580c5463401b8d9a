// Package dataset loads the startup data document that seeds every
// in-memory collection. A document may come from a JSON or YAML file; when
// loading fails for any reason the built-in sample data is used instead.
package dataset

import (
	"errors"
	"fmt"
	"time"

	"github.com/frontendlab/demo-backend/internal/booking"
	"github.com/frontendlab/demo-backend/internal/feed"
	"github.com/frontendlab/demo-backend/internal/hotel"
	"github.com/frontendlab/demo-backend/internal/order"
	"github.com/frontendlab/demo-backend/internal/product"
	"github.com/frontendlab/demo-backend/internal/user"
)

var (
	ErrUnsupportedFormat = errors.New("dataset: unsupported file format")
	ErrDuplicateID       = errors.New("dataset: duplicate id")
)

type HotelRecord struct {
	ID            int      `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Location      string   `json:"location" yaml:"location"`
	Rating        int      `json:"rating" yaml:"rating"`
	PricePerNight float64  `json:"price_per_night" yaml:"price_per_night"`
	Image         string   `json:"image" yaml:"image"`
	Amenities     []string `json:"amenities" yaml:"amenities"`
}

type BookingRecord struct {
	ID              int     `json:"id" yaml:"id"`
	HotelID         int     `json:"hotel_id" yaml:"hotel_id"`
	HotelName       string  `json:"hotel_name" yaml:"hotel_name"`
	HotelLocation   string  `json:"hotel_location" yaml:"hotel_location"`
	PricePerNight   float64 `json:"price_per_night" yaml:"price_per_night"`
	GuestName       string  `json:"guest_name" yaml:"guest_name"`
	GuestEmail      string  `json:"guest_email" yaml:"guest_email"`
	GuestPhone      string  `json:"guest_phone" yaml:"guest_phone"`
	CheckIn         string  `json:"check_in" yaml:"check_in"`
	CheckOut        string  `json:"check_out" yaml:"check_out"`
	Guests          int     `json:"guests" yaml:"guests"`
	SpecialRequests string  `json:"special_requests" yaml:"special_requests"`
	Status          string  `json:"status" yaml:"status"`
	BookingDate     string  `json:"booking_date" yaml:"booking_date"`
}

type ProductRecord struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Category    string  `json:"category" yaml:"category"`
	Price       float64 `json:"price" yaml:"price"`
	Stock       int     `json:"stock" yaml:"stock"`
	Description string  `json:"description" yaml:"description"`
	Image       string  `json:"image" yaml:"image"`
}

type UserRecord struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Role     string `json:"role" yaml:"role"`
	Address  string `json:"address" yaml:"address"`
	JoinDate string `json:"join_date" yaml:"join_date"`
}

type OrderRecord struct {
	ID        int     `json:"id" yaml:"id"`
	UserID    int     `json:"user_id" yaml:"user_id"`
	ProductID int     `json:"product_id" yaml:"product_id"`
	Quantity  int     `json:"quantity" yaml:"quantity"`
	Total     float64 `json:"total" yaml:"total"`
	Status    string  `json:"status" yaml:"status"`
	Date      string  `json:"date" yaml:"date"`
}

type PostRecord struct {
	ID        int      `json:"id" yaml:"id"`
	Author    string   `json:"author" yaml:"author"`
	AuthorID  int      `json:"author_id" yaml:"author_id"`
	Content   string   `json:"content" yaml:"content"`
	Timestamp string   `json:"timestamp" yaml:"timestamp"`
	Likes     int      `json:"likes" yaml:"likes"`
	Comments  []string `json:"comments" yaml:"comments"`
	Liked     bool     `json:"liked" yaml:"liked"`
}

type MemberRecord struct {
	ID            int    `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Avatar        string `json:"avatar" yaml:"avatar"`
	MutualFriends int    `json:"mutual_friends" yaml:"mutual_friends"`
	IsFriend      bool   `json:"is_friend" yaml:"is_friend"`
}

// Document is one complete startup dataset.
type Document struct {
	Hotels   []HotelRecord   `json:"hotels" yaml:"hotels"`
	Bookings []BookingRecord `json:"bookings" yaml:"bookings"`
	Products []ProductRecord `json:"products" yaml:"products"`
	Users    []UserRecord    `json:"users" yaml:"users"`
	Orders   []OrderRecord   `json:"orders" yaml:"orders"`
	Posts    []PostRecord    `json:"posts" yaml:"posts"`
	Members  []MemberRecord  `json:"members" yaml:"members"`
}

// Validate rejects documents that would put the store into a broken state:
// duplicate ids within a collection or bookings with unparseable or
// non-positive stays.
func (d *Document) Validate() error {
	if err := uniqueIDs("hotels", len(d.Hotels), func(i int) int { return d.Hotels[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("bookings", len(d.Bookings), func(i int) int { return d.Bookings[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("products", len(d.Products), func(i int) int { return d.Products[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("users", len(d.Users), func(i int) int { return d.Users[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("orders", len(d.Orders), func(i int) int { return d.Orders[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("posts", len(d.Posts), func(i int) int { return d.Posts[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("members", len(d.Members), func(i int) int { return d.Members[i].ID }); err != nil {
		return err
	}

	for _, b := range d.Bookings {
		if _, err := stayLength(b.CheckIn, b.CheckOut); err != nil {
			return fmt.Errorf("dataset: booking %d: %w", b.ID, err)
		}
	}
	return nil
}

func uniqueIDs(collection string, n int, id func(int) int) error {
	seen := make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: %s id %d", ErrDuplicateID, collection, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

func stayLength(checkIn, checkOut string) (int, error) {
	in, err := time.Parse(booking.DateLayout, checkIn)
	if err != nil {
		return 0, fmt.Errorf("bad check_in %q", checkIn)
	}
	out, err := time.Parse(booking.DateLayout, checkOut)
	if err != nil {
		return 0, fmt.Errorf("bad check_out %q", checkOut)
	}
	n := int(out.Sub(in).Hours() / 24)
	if n <= 0 {
		return 0, fmt.Errorf("check_out %q not after check_in %q", checkOut, checkIn)
	}
	return n, nil
}

func (d *Document) HotelModels() []hotel.Hotel {
	out := make([]hotel.Hotel, len(d.Hotels))
	for i, r := range d.Hotels {
		out[i] = hotel.Hotel{
			ID:            r.ID,
			Name:          r.Name,
			Location:      r.Location,
			Rating:        r.Rating,
			PricePerNight: r.PricePerNight,
			Image:         r.Image,
			Amenities:     r.Amenities,
		}
	}
	return out
}

// BookingModels converts booking records, recomputing nights and total
// price from the date pair so the stored derived fields can never drift
// from what the dataset file claims.
func (d *Document) BookingModels() []booking.Booking {
	out := make([]booking.Booking, len(d.Bookings))
	for i, r := range d.Bookings {
		nights, _ := stayLength(r.CheckIn, r.CheckOut)
		out[i] = booking.Booking{
			ID:              r.ID,
			HotelID:         r.HotelID,
			HotelName:       r.HotelName,
			HotelLocation:   r.HotelLocation,
			PricePerNight:   r.PricePerNight,
			GuestName:       r.GuestName,
			GuestEmail:      r.GuestEmail,
			GuestPhone:      r.GuestPhone,
			CheckIn:         r.CheckIn,
			CheckOut:        r.CheckOut,
			Guests:          r.Guests,
			Nights:          nights,
			TotalPrice:      r.PricePerNight * float64(nights),
			SpecialRequests: r.SpecialRequests,
			Status:          booking.Status(r.Status),
			BookingDate:     parseBookingDate(r.BookingDate),
		}
	}
	return out
}

func parseBookingDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	t, _ := time.Parse(booking.DateLayout, s)
	return t
}

func (d *Document) ProductModels() []product.Product {
	out := make([]product.Product, len(d.Products))
	for i, r := range d.Products {
		out[i] = product.Product{
			ID:          r.ID,
			Name:        r.Name,
			Category:    r.Category,
			Price:       r.Price,
			Stock:       r.Stock,
			Description: r.Description,
			Image:       r.Image,
		}
	}
	return out
}

func (d *Document) UserModels() []user.User {
	out := make([]user.User, len(d.Users))
	for i, r := range d.Users {
		out[i] = user.User{
			ID:       r.ID,
			Name:     r.Name,
			Email:    r.Email,
			Role:     r.Role,
			Address:  r.Address,
			JoinDate: r.JoinDate,
		}
	}
	return out
}

func (d *Document) OrderModels() []order.Order {
	out := make([]order.Order, len(d.Orders))
	for i, r := range d.Orders {
		out[i] = order.Order{
			ID:        r.ID,
			UserID:    r.UserID,
			ProductID: r.ProductID,
			Quantity:  r.Quantity,
			Total:     r.Total,
			Status:    order.Status(r.Status),
			Date:      r.Date,
		}
	}
	return out
}

func (d *Document) PostModels() []feed.Post {
	out := make([]feed.Post, len(d.Posts))
	for i, r := range d.Posts {
		comments := r.Comments
		if comments == nil {
			comments = []string{}
		}
		ts, _ := time.Parse(time.RFC3339, r.Timestamp)
		out[i] = feed.Post{
			ID:        r.ID,
			Author:    r.Author,
			AuthorID:  r.AuthorID,
			Content:   r.Content,
			Timestamp: ts,
			Likes:     r.Likes,
			Comments:  comments,
			Liked:     r.Liked,
		}
	}
	return out
}

func (d *Document) MemberModels() []feed.Member {
	out := make([]feed.Member, len(d.Members))
	for i, r := range d.Members {
		out[i] = feed.Member{
			ID:            r.ID,
			Name:          r.Name,
			Avatar:        r.Avatar,
			MutualFriends: r.MutualFriends,
			IsFriend:      r.IsFriend,
		}
	}
	return out
}
