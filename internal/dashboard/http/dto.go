package http

import "github.com/frontendlab/demo-backend/internal/dashboard"

type StatsResponse struct {
	TotalProducts int     `json:"total_products"`
	TotalUsers    int     `json:"total_users"`
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
}

func NewStatsResponse(s *dashboard.Stats) StatsResponse {
	return StatsResponse{
		TotalProducts: s.TotalProducts,
		TotalUsers:    s.TotalUsers,
		TotalOrders:   s.TotalOrders,
		TotalRevenue:  s.TotalRevenue,
	}
}
