package product

import "github.com/frontendlab/demo-backend/internal/pkg/apperror"

var (
	ErrNotFound         = apperror.NotFound("product not found")
	ErrNameRequired     = apperror.Invalid("product name is required")
	ErrCategoryRequired = apperror.Invalid("product category is required")
	ErrInvalidPrice     = apperror.Invalid("price must not be negative")
	ErrInvalidStock     = apperror.Invalid("stock must not be negative")
)

// Product is one catalog entry shared by the admin console and the shop.
type Product struct {
	ID          int
	Name        string
	Category    string
	Price       float64
	Stock       int
	Description string
	Image       string
}
