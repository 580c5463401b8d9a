package user

import "github.com/frontendlab/demo-backend/internal/pkg/apperror"

var (
	ErrNotFound      = apperror.NotFound("user not found")
	ErrNameRequired  = apperror.Invalid("user name is required")
	ErrEmailRequired = apperror.Invalid("user email is required")
	ErrRoleRequired  = apperror.Invalid("user role is required")
)

// User is one account record in the admin console. JoinDate is assigned
// when the record is created and kept as a calendar date string.
type User struct {
	ID       int
	Name     string
	Email    string
	Role     string
	Address  string
	JoinDate string
}
