package feed

import (
	"context"
	"strings"
	"time"
)

// suggestionLimit caps the "people you may know" list.
const suggestionLimit = 6

type Service interface {
	CreatePost(ctx context.Context, content string) (*Post, error)
	GetPost(ctx context.Context, id int) (*Post, error)
	ListPosts(ctx context.Context) ([]*Post, error)
	EditPost(ctx context.Context, id int, content string) (*Post, error)
	DeletePost(ctx context.Context, id int) error
	ToggleLike(ctx context.Context, id int) (*Post, error)
	Comments(ctx context.Context, id int) ([]string, error)

	Friends(ctx context.Context) ([]*Member, error)
	Suggestions(ctx context.Context) ([]*Member, error)
	ToggleFriend(ctx context.Context, id int) (*Member, error)

	Stats(ctx context.Context) (*ProfileStats, error)
}

type service struct {
	repo            Repository
	currentUserID   int
	currentUserName string
	now             func() time.Time
}

// NewService builds the feed service acting as the given user. Every post
// created and every like toggled belongs to that user.
func NewService(repo Repository, currentUserID int, currentUserName string) Service {
	return &service{
		repo:            repo,
		currentUserID:   currentUserID,
		currentUserName: currentUserName,
		now:             time.Now,
	}
}

func (s *service) CreatePost(ctx context.Context, content string) (*Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}

	p := &Post{
		Author:    s.currentUserName,
		AuthorID:  s.currentUserID,
		Content:   content,
		Timestamp: s.now().UTC(),
		Comments:  []string{},
	}
	if err := s.repo.CreatePost(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetPost(ctx context.Context, id int) (*Post, error) {
	return s.repo.GetPost(ctx, id)
}

// ListPosts returns the feed newest-first. The store keeps insertion
// order, so reversing it puts the most recent post on top.
func (s *service) ListPosts(ctx context.Context) ([]*Post, error) {
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(posts)-1; i < j; i, j = i+1, j-1 {
		posts[i], posts[j] = posts[j], posts[i]
	}
	return posts, nil
}

func (s *service) EditPost(ctx context.Context, id int, content string) (*Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}

	return s.repo.UpdatePost(ctx, id, func(p Post) Post {
		p.Content = content
		p.Timestamp = s.now().UTC()
		return p
	})
}

func (s *service) DeletePost(ctx context.Context, id int) error {
	return s.repo.DeletePost(ctx, id)
}

// ToggleLike flips the acting user's like on a post. Liking twice lands
// back on the original count.
func (s *service) ToggleLike(ctx context.Context, id int) (*Post, error) {
	return s.repo.UpdatePost(ctx, id, func(p Post) Post {
		if p.Liked {
			p.Liked = false
			p.Likes--
		} else {
			p.Liked = true
			p.Likes++
		}
		return p
	})
}

func (s *service) Comments(ctx context.Context, id int) ([]string, error) {
	p, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Comments == nil {
		return []string{}, nil
	}
	return p.Comments, nil
}

func (s *service) Friends(ctx context.Context) ([]*Member, error) {
	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	friends := make([]*Member, 0)
	for _, m := range members {
		if m.IsFriend {
			friends = append(friends, m)
		}
	}
	return friends, nil
}

// Suggestions lists members the acting user is not friends with yet,
// capped at suggestionLimit.
func (s *service) Suggestions(ctx context.Context) ([]*Member, error) {
	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	suggestions := make([]*Member, 0, suggestionLimit)
	for _, m := range members {
		if m.IsFriend || m.ID == s.currentUserID {
			continue
		}
		suggestions = append(suggestions, m)
		if len(suggestions) == suggestionLimit {
			break
		}
	}
	return suggestions, nil
}

func (s *service) ToggleFriend(ctx context.Context, id int) (*Member, error) {
	return s.repo.UpdateMember(ctx, id, func(m Member) Member {
		m.IsFriend = !m.IsFriend
		return m
	})
}

func (s *service) Stats(ctx context.Context) (*ProfileStats, error) {
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ProfileStats{}
	for _, p := range posts {
		if p.AuthorID == s.currentUserID {
			stats.PostCount++
		}
	}
	for _, m := range members {
		if m.IsFriend {
			stats.FriendCount++
		}
	}
	return stats, nil
}
