package user

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	Name    string
	Email   string
	Role    string
	Address string
}

type UpdateRequest struct {
	Name    *string
	Email   *string
	Role    *string
	Address *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	List(ctx context.Context) ([]*User, error)
	// Search matches name, email or role, case-insensitively, in
	// collection order. An empty query matches everything.
	Search(ctx context.Context, query string) ([]*User, error)
	Update(ctx context.Context, id int, req UpdateRequest) (*User, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, ErrEmailRequired
	}
	if strings.TrimSpace(req.Role) == "" {
		return nil, ErrRoleRequired
	}

	u := &User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Address:  req.Address,
		JoinDate: s.now().UTC().Format("2006-01-02"),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *service) Search(ctx context.Context, query string) ([]*User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return users, nil
	}

	matched := make([]*User, 0)
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q) ||
			strings.Contains(strings.ToLower(u.Role), q) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateRequest) (*User, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) == "" {
		return nil, ErrEmailRequired
	}
	if req.Role != nil && strings.TrimSpace(*req.Role) == "" {
		return nil, ErrRoleRequired
	}

	return s.repo.Update(ctx, id, func(u User) User {
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.Role != nil {
			u.Role = *req.Role
		}
		if req.Address != nil {
			u.Address = *req.Address
		}
		return u
	})
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
