// Package dashboard derives the admin console summary from the product,
// user and order collections. It owns no records of its own: every call is
// a pure reduction over current store state.
package dashboard

import (
	"context"

	"github.com/frontendlab/demo-backend/internal/order"
	"github.com/frontendlab/demo-backend/internal/product"
	"github.com/frontendlab/demo-backend/internal/user"
)

// Stats is the dashboard tab of the admin console.
type Stats struct {
	TotalProducts int
	TotalUsers    int
	TotalOrders   int
	TotalRevenue  float64
}

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	productService product.Service
	userService    user.Service
	orderService   order.Service
}

func NewService(productService product.Service, userService user.Service, orderService order.Service) Service {
	return &service{
		productService: productService,
		userService:    userService,
		orderService:   orderService,
	}
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	products, err := s.productService.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userService.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderService.List(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderService.Revenue(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalProducts: len(products),
		TotalUsers:    len(users),
		TotalOrders:   len(orders),
		TotalRevenue:  revenue,
	}, nil
}
