package http

import "github.com/frontendlab/demo-backend/internal/user"

type UserResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Address  string `json:"address"`
	JoinDate string `json:"join_date"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Address:  u.Address,
		JoinDate: u.JoinDate,
	}
}

type CreateUserBody struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Role    string `json:"role" binding:"required"`
	Address string `json:"address"`
}

type UpdateUserBody struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Role    *string `json:"role"`
	Address *string `json:"address"`
}
