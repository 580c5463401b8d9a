package feed

import (
	"context"

	"github.com/frontendlab/demo-backend/internal/pkg/memstore"
)

// Repository owns both feed collections. Posts and members always travel
// together in this app, so they share one repository.
type Repository interface {
	CreatePost(ctx context.Context, p *Post) error
	GetPost(ctx context.Context, id int) (*Post, error)
	ListPosts(ctx context.Context) ([]*Post, error)
	UpdatePost(ctx context.Context, id int, apply func(Post) Post) (*Post, error)
	DeletePost(ctx context.Context, id int) error

	GetMember(ctx context.Context, id int) (*Member, error)
	ListMembers(ctx context.Context) ([]*Member, error)
	UpdateMember(ctx context.Context, id int, apply func(Member) Member) (*Member, error)
}

type memRepository struct {
	posts   *memstore.Collection[Post]
	members *memstore.Collection[Member]
}

// NewMemRepository wraps the in-memory post and member collections.
func NewMemRepository(posts *memstore.Collection[Post], members *memstore.Collection[Member]) Repository {
	return &memRepository{posts: posts, members: members}
}

func (r *memRepository) CreatePost(_ context.Context, p *Post) error {
	*p = r.posts.Add(*p)
	return nil
}

func (r *memRepository) GetPost(_ context.Context, id int) (*Post, error) {
	p, ok := r.posts.Find(id)
	if !ok {
		return nil, ErrPostNotFound
	}
	return &p, nil
}

func (r *memRepository) ListPosts(_ context.Context) ([]*Post, error) {
	items := r.posts.List()
	out := make([]*Post, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}

func (r *memRepository) UpdatePost(_ context.Context, id int, apply func(Post) Post) (*Post, error) {
	p, ok := r.posts.Update(id, apply)
	if !ok {
		return nil, ErrPostNotFound
	}
	return &p, nil
}

func (r *memRepository) DeletePost(_ context.Context, id int) error {
	r.posts.Remove(id)
	return nil
}

func (r *memRepository) GetMember(_ context.Context, id int) (*Member, error) {
	m, ok := r.members.Find(id)
	if !ok {
		return nil, ErrMemberNotFound
	}
	return &m, nil
}

func (r *memRepository) ListMembers(_ context.Context) ([]*Member, error) {
	items := r.members.List()
	out := make([]*Member, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}

func (r *memRepository) UpdateMember(_ context.Context, id int, apply func(Member) Member) (*Member, error) {
	m, ok := r.members.Update(id, apply)
	if !ok {
		return nil, ErrMemberNotFound
	}
	return &m, nil
}
