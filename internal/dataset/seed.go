package dataset

// Sample returns the built-in dataset used when no dataset file is
// available. It mirrors the demo pages: a handful of hotels with a couple
// of bookings, a small shop catalog with users and orders, and a short
// social feed.
func Sample() *Document {
	return &Document{
		Hotels: []HotelRecord{
			{
				ID: 1, Name: "Grand Palace Hotel", Location: "Paris, France",
				Rating: 5, PricePerNight: 450,
				Image:     "https://images.example.com/hotels/grand-palace.jpg",
				Amenities: []string{"WiFi", "Pool", "Spa", "Restaurant"},
			},
			{
				ID: 2, Name: "Seaside Resort", Location: "Barcelona, Spain",
				Rating: 4, PricePerNight: 280,
				Image:     "https://images.example.com/hotels/seaside-resort.jpg",
				Amenities: []string{"WiFi", "Beach Access", "Pool"},
			},
			{
				ID: 3, Name: "Mountain View Lodge", Location: "Zermatt, Switzerland",
				Rating: 4, PricePerNight: 320,
				Image:     "https://images.example.com/hotels/mountain-view.jpg",
				Amenities: []string{"WiFi", "Ski Storage", "Fireplace"},
			},
			{
				ID: 4, Name: "City Center Inn", Location: "Amsterdam, Netherlands",
				Rating: 3, PricePerNight: 150,
				Image:     "https://images.example.com/hotels/city-center.jpg",
				Amenities: []string{"WiFi", "Breakfast"},
			},
		},
		Bookings: []BookingRecord{
			{
				ID: 1, HotelID: 1, HotelName: "Grand Palace Hotel", HotelLocation: "Paris, France",
				PricePerNight: 450, GuestName: "Alice Johnson", GuestEmail: "alice@example.com",
				GuestPhone: "+1-555-0101", CheckIn: "2024-03-10", CheckOut: "2024-03-14",
				Guests: 2, Status: "confirmed", BookingDate: "2024-02-20T10:30:00Z",
			},
			{
				ID: 2, HotelID: 2, HotelName: "Seaside Resort", HotelLocation: "Barcelona, Spain",
				PricePerNight: 280, GuestName: "Bob Smith", GuestEmail: "bob@example.com",
				GuestPhone: "+1-555-0102", CheckIn: "2024-04-01", CheckOut: "2024-04-05",
				Guests: 3, SpecialRequests: "Late check-in", Status: "confirmed",
				BookingDate: "2024-03-15T16:45:00Z",
			},
		},
		Products: []ProductRecord{
			{ID: 1, Name: "Wireless Headphones", Category: "Electronics", Price: 99.99, Stock: 45,
				Description: "Noise-cancelling over-ear headphones",
				Image:       "https://images.example.com/products/headphones.jpg"},
			{ID: 2, Name: "Smart Watch", Category: "Electronics", Price: 249.99, Stock: 30,
				Description: "Fitness tracking smart watch",
				Image:       "https://images.example.com/products/smart-watch.jpg"},
			{ID: 3, Name: "Running Shoes", Category: "Sports", Price: 79.99, Stock: 60,
				Description: "Lightweight running shoes",
				Image:       "https://images.example.com/products/running-shoes.jpg"},
			{ID: 4, Name: "Coffee Maker", Category: "Home", Price: 129.99, Stock: 25,
				Description: "Programmable drip coffee maker",
				Image:       "https://images.example.com/products/coffee-maker.jpg"},
			{ID: 5, Name: "Yoga Mat", Category: "Sports", Price: 29.99, Stock: 100,
				Description: "Non-slip exercise mat",
				Image:       "https://images.example.com/products/yoga-mat.jpg"},
			{ID: 6, Name: "Desk Lamp", Category: "Home", Price: 39.99, Stock: 50,
				Description: "Adjustable LED desk lamp",
				Image:       "https://images.example.com/products/desk-lamp.jpg"},
		},
		Users: []UserRecord{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "Admin",
				Address: "123 Main St, Springfield", JoinDate: "2023-01-15"},
			{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "Customer",
				Address: "456 Oak Ave, Portland", JoinDate: "2023-03-22"},
			{ID: 3, Name: "Mike Wilson", Email: "mike@example.com", Role: "Customer",
				Address: "789 Pine Rd, Austin", JoinDate: "2023-06-08"},
			{ID: 4, Name: "Sarah Brown", Email: "sarah@example.com", Role: "Manager",
				Address: "321 Elm St, Denver", JoinDate: "2023-09-30"},
		},
		Orders: []OrderRecord{
			{ID: 1, UserID: 2, ProductID: 1, Quantity: 1, Total: 99.99, Status: "delivered", Date: "2024-01-10"},
			{ID: 2, UserID: 3, ProductID: 2, Quantity: 2, Total: 499.98, Status: "shipped", Date: "2024-01-18"},
			{ID: 3, UserID: 2, ProductID: 4, Quantity: 1, Total: 129.99, Status: "pending", Date: "2024-02-02"},
			{ID: 4, UserID: 4, ProductID: 3, Quantity: 1, Total: 79.99, Status: "cancelled", Date: "2024-02-05"},
		},
		Posts: []PostRecord{
			{ID: 1, Author: "Emma Davis", AuthorID: 2, Content: "Just finished a great hike in the mountains!",
				Timestamp: "2024-02-10T08:15:00Z", Likes: 12,
				Comments: []string{"Looks amazing!", "Which trail?"}},
			{ID: 2, Author: "John Doe", AuthorID: 1, Content: "Trying out the new coffee place downtown.",
				Timestamp: "2024-02-11T12:40:00Z", Likes: 5,
				Comments: []string{"How was it?"}},
			{ID: 3, Author: "Liam Chen", AuthorID: 3, Content: "Weekend project: building a bookshelf.",
				Timestamp: "2024-02-12T17:05:00Z", Likes: 8, Comments: []string{}},
		},
		Members: []MemberRecord{
			{ID: 2, Name: "Emma Davis", Avatar: "https://images.example.com/avatars/emma.jpg",
				MutualFriends: 3, IsFriend: true},
			{ID: 3, Name: "Liam Chen", Avatar: "https://images.example.com/avatars/liam.jpg",
				MutualFriends: 1, IsFriend: true},
			{ID: 4, Name: "Olivia Park", Avatar: "https://images.example.com/avatars/olivia.jpg",
				MutualFriends: 2},
			{ID: 5, Name: "Noah Patel", Avatar: "https://images.example.com/avatars/noah.jpg",
				MutualFriends: 4},
			{ID: 6, Name: "Ava Novak", Avatar: "https://images.example.com/avatars/ava.jpg",
				MutualFriends: 0},
		},
	}
}
