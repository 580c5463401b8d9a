package order

import (
	"context"
	"errors"
	"time"

	"github.com/frontendlab/demo-backend/internal/product"
	"github.com/frontendlab/demo-backend/internal/user"
)

// UnknownName is shown when a joined record has been deleted. A missing
// reference never fails the view and never drops the row.
const UnknownName = "Unknown"

type CreateRequest struct {
	UserID    int
	ProductID int
	Quantity  int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Order, error)
	GetByID(ctx context.Context, id int) (*Order, error)
	// List returns the joined orders view in collection order, resolving
	// customer and product names at render time.
	List(ctx context.Context) ([]*View, error)
	// AdvanceStatus moves the order one step along the fixed cycle
	// pending -> processing -> shipped -> delivered -> cancelled -> pending.
	AdvanceStatus(ctx context.Context, id int) (*Order, error)
	// Revenue sums Total over all orders. Cancelled orders are included,
	// matching the console's dashboard arithmetic.
	Revenue(ctx context.Context) (float64, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo           Repository
	userService    user.Service
	productService product.Service
}

func NewService(repo Repository, userService user.Service, productService product.Service) Service {
	return &service{
		repo:           repo,
		userService:    userService,
		productService: productService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Order, error) {
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.userService.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	p, err := s.productService.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	o := &Order{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Total:     p.Price * float64(req.Quantity),
		Status:    StatusPending,
		Date:      time.Now().UTC().Format("2006-01-02"),
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*View, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*View, len(orders))
	for i, o := range orders {
		v := &View{Order: *o, CustomerName: UnknownName, ProductName: UnknownName}
		if u, err := s.userService.GetByID(ctx, o.UserID); err == nil {
			v.CustomerName = u.Name
		}
		if p, err := s.productService.GetByID(ctx, o.ProductID); err == nil {
			v.ProductName = p.Name
		}
		views[i] = v
	}
	return views, nil
}

func (s *service) AdvanceStatus(ctx context.Context, id int) (*Order, error) {
	return s.repo.Update(ctx, id, func(o Order) Order {
		o.Status = o.Status.Next()
		return o
	})
}

func (s *service) Revenue(ctx context.Context) (float64, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, o := range orders {
		total += o.Total
	}
	return total, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
