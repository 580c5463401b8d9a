package product

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name        string
	Category    string
	Price       float64
	Stock       int
	Description string
	Image       string
}

type UpdateRequest struct {
	Name        *string
	Category    *string
	Price       *float64
	Stock       *int
	Description *string
	Image       *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	// Search matches name or category, case-insensitively, in collection
	// order. An empty query matches everything.
	Search(ctx context.Context, query string) ([]*Product, error)
	Update(ctx context.Context, id int, req UpdateRequest) (*Product, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, ErrCategoryRequired
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if req.Stock < 0 {
		return nil, ErrInvalidStock
	}

	p := &Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		Image:       req.Image,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) Search(ctx context.Context, query string) ([]*Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products, nil
	}

	matched := make([]*Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateRequest) (*Product, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) == "" {
		return nil, ErrCategoryRequired
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if req.Stock != nil && *req.Stock < 0 {
		return nil, ErrInvalidStock
	}

	return s.repo.Update(ctx, id, func(p Product) Product {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Image != nil {
			p.Image = *req.Image
		}
		return p
	})
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
