package cart

import (
	"context"
	"errors"

	"github.com/frontendlab/demo-backend/internal/product"
)

type Service interface {
	// AddItem puts the product in the cart, or bumps the quantity of the
	// existing line when it is already there.
	AddItem(ctx context.Context, productID int) (*Item, error)
	// RemoveItem drops the whole line. Removing an absent product is a
	// silent no-op.
	RemoveItem(ctx context.Context, productID int) error
	View(ctx context.Context) (*View, error)
	// Checkout returns the cart total and empties the cart. An empty cart
	// cannot be checked out.
	Checkout(ctx context.Context) (float64, error)
}

type service struct {
	repo           Repository
	productService product.Service
}

func NewService(repo Repository, productService product.Service) Service {
	return &service{
		repo:           repo,
		productService: productService,
	}
}

func (s *service) AddItem(ctx context.Context, productID int) (*Item, error) {
	if existing, ok := s.repo.GetByProductID(ctx, productID); ok {
		existing.Quantity++
		if err := s.repo.Put(ctx, *existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	p, err := s.productService.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	item := Item{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Image:       p.Image,
		Quantity:    1,
	}
	if err := s.repo.Put(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *service) RemoveItem(ctx context.Context, productID int) error {
	return s.repo.Remove(ctx, productID)
}

func (s *service) View(ctx context.Context) (*View, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	v := &View{Items: items}
	for _, item := range items {
		v.ItemCount += item.Quantity
		v.Total += item.LineTotal()
	}
	return v, nil
}

func (s *service) Checkout(ctx context.Context) (float64, error) {
	v, err := s.View(ctx)
	if err != nil {
		return 0, err
	}
	if len(v.Items) == 0 {
		return 0, ErrEmptyCart
	}

	if err := s.repo.Clear(ctx); err != nil {
		return 0, err
	}
	return v.Total, nil
}
