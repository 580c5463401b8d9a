package cart

import "github.com/frontendlab/demo-backend/internal/pkg/apperror"

var (
	ErrProductNotFound = apperror.NotFound("product not found")
	ErrEmptyCart       = apperror.Invalid("cart is empty")
)

// Item is one cart line. Its identity is the product id: adding the same
// product again bumps Quantity instead of creating a second line. The
// display fields are copied from the product when the line is first added,
// so a later catalog edit does not reprice what is already in the cart.
type Item struct {
	ProductID   int
	Name        string
	Description string
	Category    string
	Price       float64
	Image       string
	Quantity    int
}

// LineTotal is the price of the line at its current quantity.
func (i Item) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// View is the rendered cart: all lines plus the two cart-wide reductions
// shown in the header (item count) and footer (total).
type View struct {
	Items     []Item
	ItemCount int
	Total     float64
}
