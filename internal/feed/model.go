package feed

import (
	"time"

	"github.com/frontendlab/demo-backend/internal/pkg/apperror"
)

var (
	ErrPostNotFound    = apperror.NotFound("post not found")
	ErrMemberNotFound  = apperror.NotFound("member not found")
	ErrContentRequired = apperror.Invalid("post content is required")
)

// Post is one feed entry. Author name and id are copied from the acting
// user when the post is created. Liked tracks whether the acting user has
// liked the post; toggling flips Liked and moves Likes by exactly one.
type Post struct {
	ID        int
	Author    string
	AuthorID  int
	Content   string
	Timestamp time.Time
	Likes     int
	Comments  []string
	Liked     bool
}

// Member is another account on the network. Friendship is a flag on the
// member record rather than a separate edge collection.
type Member struct {
	ID            int
	Name          string
	Avatar        string
	MutualFriends int
	IsFriend      bool
}

// ProfileStats is the pair of counters on the profile page.
type ProfileStats struct {
	PostCount   int
	FriendCount int
}
