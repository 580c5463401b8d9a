package order

import (
	"context"

	"github.com/frontendlab/demo-backend/internal/pkg/memstore"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	Update(ctx context.Context, id int, apply func(Order) Order) (*Order, error)
	Delete(ctx context.Context, id int) error
}

type memRepository struct {
	orders *memstore.Collection[Order]
}

// NewMemRepository wraps an in-memory order collection.
func NewMemRepository(orders *memstore.Collection[Order]) Repository {
	return &memRepository{orders: orders}
}

func (r *memRepository) Create(_ context.Context, o *Order) error {
	*o = r.orders.Add(*o)
	return nil
}

func (r *memRepository) GetByID(_ context.Context, id int) (*Order, error) {
	o, ok := r.orders.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (r *memRepository) List(_ context.Context) ([]*Order, error) {
	items := r.orders.List()
	out := make([]*Order, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}

func (r *memRepository) Update(_ context.Context, id int, apply func(Order) Order) (*Order, error) {
	o, ok := r.orders.Update(id, apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (r *memRepository) Delete(_ context.Context, id int) error {
	r.orders.Remove(id)
	return nil
}
