package user

import (
	"context"

	"github.com/frontendlab/demo-backend/internal/pkg/memstore"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, id int, apply func(User) User) (*User, error)
	Delete(ctx context.Context, id int) error
}

type memRepository struct {
	users *memstore.Collection[User]
}

// NewMemRepository wraps an in-memory user collection.
func NewMemRepository(users *memstore.Collection[User]) Repository {
	return &memRepository{users: users}
}

func (r *memRepository) Create(_ context.Context, u *User) error {
	*u = r.users.Add(*u)
	return nil
}

func (r *memRepository) GetByID(_ context.Context, id int) (*User, error) {
	u, ok := r.users.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *memRepository) List(_ context.Context) ([]*User, error) {
	items := r.users.List()
	out := make([]*User, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}

func (r *memRepository) Update(_ context.Context, id int, apply func(User) User) (*User, error) {
	u, ok := r.users.Update(id, apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *memRepository) Delete(_ context.Context, id int) error {
	r.users.Remove(id)
	return nil
}
