package hotel

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name          string
	Location      string
	Rating        int
	PricePerNight float64
	Image         string
	Amenities     []string
}

type UpdateRequest struct {
	Name          *string
	Location      *string
	Rating        *int
	PricePerNight *float64
	Image         *string
	Amenities     *[]string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Hotel, error)
	GetByID(ctx context.Context, id int) (*Hotel, error)
	List(ctx context.Context) ([]*Hotel, error)
	// Search returns hotels whose name or location contains the query,
	// case-insensitively, in original collection order. An empty query
	// matches everything.
	Search(ctx context.Context, query string) ([]*Hotel, error)
	Update(ctx context.Context, id int, req UpdateRequest) (*Hotel, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Hotel, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Location) == "" {
		return nil, ErrLocationRequired
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if req.PricePerNight < 0 {
		return nil, ErrInvalidPrice
	}

	h := &Hotel{
		Name:          req.Name,
		Location:      req.Location,
		Rating:        req.Rating,
		PricePerNight: req.PricePerNight,
		Image:         req.Image,
		Amenities:     req.Amenities,
	}

	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Hotel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Hotel, error) {
	return s.repo.List(ctx)
}

func (s *service) Search(ctx context.Context, query string) ([]*Hotel, error) {
	hotels, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return hotels, nil
	}

	matched := make([]*Hotel, 0)
	for _, h := range hotels {
		if strings.Contains(strings.ToLower(h.Name), q) ||
			strings.Contains(strings.ToLower(h.Location), q) {
			matched = append(matched, h)
		}
	}
	return matched, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateRequest) (*Hotel, error) {
	// Validate before touching the store so a rejected patch leaves the
	// record unchanged.
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.Location != nil && strings.TrimSpace(*req.Location) == "" {
		return nil, ErrLocationRequired
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return nil, ErrInvalidRating
	}
	if req.PricePerNight != nil && *req.PricePerNight < 0 {
		return nil, ErrInvalidPrice
	}

	return s.repo.Update(ctx, id, func(h Hotel) Hotel {
		if req.Name != nil {
			h.Name = *req.Name
		}
		if req.Location != nil {
			h.Location = *req.Location
		}
		if req.Rating != nil {
			h.Rating = *req.Rating
		}
		if req.PricePerNight != nil {
			h.PricePerNight = *req.PricePerNight
		}
		if req.Image != nil {
			h.Image = *req.Image
		}
		if req.Amenities != nil {
			h.Amenities = *req.Amenities
		}
		return h
	})
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
