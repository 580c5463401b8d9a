package hotel

import (
	"context"

	"github.com/frontendlab/demo-backend/internal/pkg/memstore"
)

type Repository interface {
	Create(ctx context.Context, h *Hotel) error
	GetByID(ctx context.Context, id int) (*Hotel, error)
	List(ctx context.Context) ([]*Hotel, error)
	Update(ctx context.Context, id int, apply func(Hotel) Hotel) (*Hotel, error)
	Delete(ctx context.Context, id int) error
}

type memRepository struct {
	hotels *memstore.Collection[Hotel]
}

// NewMemRepository wraps an in-memory hotel collection.
func NewMemRepository(hotels *memstore.Collection[Hotel]) Repository {
	return &memRepository{hotels: hotels}
}

func (r *memRepository) Create(_ context.Context, h *Hotel) error {
	*h = r.hotels.Add(*h)
	return nil
}

func (r *memRepository) GetByID(_ context.Context, id int) (*Hotel, error) {
	h, ok := r.hotels.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &h, nil
}

func (r *memRepository) List(_ context.Context) ([]*Hotel, error) {
	items := r.hotels.List()
	out := make([]*Hotel, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}

func (r *memRepository) Update(_ context.Context, id int, apply func(Hotel) Hotel) (*Hotel, error) {
	h, ok := r.hotels.Update(id, apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &h, nil
}

func (r *memRepository) Delete(_ context.Context, id int) error {
	// Deleting an absent hotel is a no-op, not an error.
	r.hotels.Remove(id)
	return nil
}
