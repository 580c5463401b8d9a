package product

import (
	"context"

	"github.com/frontendlab/demo-backend/internal/pkg/memstore"
)

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, id int, apply func(Product) Product) (*Product, error)
	Delete(ctx context.Context, id int) error
}

type memRepository struct {
	products *memstore.Collection[Product]
}

// NewMemRepository wraps an in-memory product collection.
func NewMemRepository(products *memstore.Collection[Product]) Repository {
	return &memRepository{products: products}
}

func (r *memRepository) Create(_ context.Context, p *Product) error {
	*p = r.products.Add(*p)
	return nil
}

func (r *memRepository) GetByID(_ context.Context, id int) (*Product, error) {
	p, ok := r.products.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *memRepository) List(_ context.Context) ([]*Product, error) {
	items := r.products.List()
	out := make([]*Product, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}

func (r *memRepository) Update(_ context.Context, id int, apply func(Product) Product) (*Product, error) {
	p, ok := r.products.Update(id, apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *memRepository) Delete(_ context.Context, id int) error {
	r.products.Remove(id)
	return nil
}
