package booking

import (
	"context"

	"github.com/frontendlab/demo-backend/internal/pkg/memstore"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int) (*Booking, error)
	List(ctx context.Context) ([]*Booking, error)
	Update(ctx context.Context, id int, apply func(Booking) Booking) (*Booking, error)
	Delete(ctx context.Context, id int) error
}

type memRepository struct {
	bookings *memstore.Collection[Booking]
}

// NewMemRepository wraps an in-memory booking collection.
func NewMemRepository(bookings *memstore.Collection[Booking]) Repository {
	return &memRepository{bookings: bookings}
}

func (r *memRepository) Create(_ context.Context, b *Booking) error {
	*b = r.bookings.Add(*b)
	return nil
}

func (r *memRepository) GetByID(_ context.Context, id int) (*Booking, error) {
	b, ok := r.bookings.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *memRepository) List(_ context.Context) ([]*Booking, error) {
	items := r.bookings.List()
	out := make([]*Booking, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}

func (r *memRepository) Update(_ context.Context, id int, apply func(Booking) Booking) (*Booking, error) {
	b, ok := r.bookings.Update(id, apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *memRepository) Delete(_ context.Context, id int) error {
	r.bookings.Remove(id)
	return nil
}
