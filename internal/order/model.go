package order

import "github.com/frontendlab/demo-backend/internal/pkg/apperror"

var (
	ErrNotFound        = apperror.NotFound("order not found")
	ErrUserNotFound    = apperror.NotFound("user not found")
	ErrProductNotFound = apperror.NotFound("product not found")
	ErrInvalidQuantity = apperror.Invalid("quantity must be at least 1")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// statusCycle is the fixed sequence the console steps through on every
// "update status" click. Cancelled wraps back to pending.
var statusCycle = []Status{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// Next returns the status following s in the cycle. Unknown statuses
// restart at pending.
func (s Status) Next() Status {
	for i, st := range statusCycle {
		if st == s {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return StatusPending
}

// Order references a user and a product by id. Total is priced from the
// product at creation time. The customer and product names are NOT stored:
// the orders view joins them at render time and shows "Unknown" when the
// referenced record no longer exists.
type Order struct {
	ID        int
	UserID    int
	ProductID int
	Quantity  int
	Total     float64
	Status    Status
	Date      string
}

// View is the display-ready orders row with referenced names resolved.
type View struct {
	Order
	CustomerName string
	ProductName  string
}
