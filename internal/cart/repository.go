package cart

import (
	"context"

	"github.com/frontendlab/demo-backend/internal/pkg/memstore"
)

type Repository interface {
	GetByProductID(ctx context.Context, productID int) (*Item, bool)
	Put(ctx context.Context, item Item) error
	Remove(ctx context.Context, productID int) error
	List(ctx context.Context) ([]Item, error)
	Clear(ctx context.Context) error
}

type memRepository struct {
	items *memstore.Collection[Item]
}

// NewMemRepository wraps an in-memory cart collection keyed by product id.
func NewMemRepository(items *memstore.Collection[Item]) Repository {
	return &memRepository{items: items}
}

func (r *memRepository) GetByProductID(_ context.Context, productID int) (*Item, bool) {
	item, ok := r.items.Find(productID)
	if !ok {
		return nil, false
	}
	return &item, true
}

func (r *memRepository) Put(_ context.Context, item Item) error {
	r.items.Put(item)
	return nil
}

func (r *memRepository) Remove(_ context.Context, productID int) error {
	r.items.Remove(productID)
	return nil
}

func (r *memRepository) List(_ context.Context) ([]Item, error) {
	return r.items.List(), nil
}

func (r *memRepository) Clear(_ context.Context) error {
	r.items.Clear()
	return nil
}
