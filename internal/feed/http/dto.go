package http

import (
	"time"

	"github.com/frontendlab/demo-backend/internal/feed"
)

type PostResponse struct {
	ID           int       `json:"id"`
	Author       string    `json:"author"`
	AuthorID     int       `json:"author_id"`
	Content      string    `json:"content"`
	Timestamp    time.Time `json:"timestamp"`
	Likes        int       `json:"likes"`
	Liked        bool      `json:"liked"`
	CommentCount int       `json:"comment_count"`
}

func NewPostResponse(p *feed.Post) PostResponse {
	return PostResponse{
		ID:           p.ID,
		Author:       p.Author,
		AuthorID:     p.AuthorID,
		Content:      p.Content,
		Timestamp:    p.Timestamp,
		Likes:        p.Likes,
		Liked:        p.Liked,
		CommentCount: len(p.Comments),
	}
}

func NewPostResponses(posts []*feed.Post) []PostResponse {
	out := make([]PostResponse, len(posts))
	for i, p := range posts {
		out[i] = NewPostResponse(p)
	}
	return out
}

type MemberResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar,omitempty"`
	MutualFriends int    `json:"mutual_friends"`
	IsFriend      bool   `json:"is_friend"`
}

func NewMemberResponse(m *feed.Member) MemberResponse {
	return MemberResponse{
		ID:            m.ID,
		Name:          m.Name,
		Avatar:        m.Avatar,
		MutualFriends: m.MutualFriends,
		IsFriend:      m.IsFriend,
	}
}

func NewMemberResponses(members []*feed.Member) []MemberResponse {
	out := make([]MemberResponse, len(members))
	for i, m := range members {
		out[i] = NewMemberResponse(m)
	}
	return out
}

type StatsResponse struct {
	PostCount   int `json:"post_count"`
	FriendCount int `json:"friend_count"`
}

type CreatePostBody struct {
	Content string `json:"content" binding:"required"`
}

type EditPostBody struct {
	Content string `json:"content" binding:"required"`
}

type CommentsResponse struct {
	Comments []string `json:"comments"`
}
