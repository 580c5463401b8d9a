package http

import "github.com/frontendlab/demo-backend/internal/order"

type OrderResponse struct {
	ID        int     `json:"id"`
	UserID    int     `json:"user_id"`
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
	Status    string  `json:"status"`
	Date      string  `json:"date"`
}

func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		Total:     o.Total,
		Status:    string(o.Status),
		Date:      o.Date,
	}
}

// OrderViewResponse is the joined row shown in the orders tab.
type OrderViewResponse struct {
	OrderResponse
	CustomerName string `json:"customer_name"`
	ProductName  string `json:"product_name"`
}

func NewOrderViewResponse(v *order.View) OrderViewResponse {
	return OrderViewResponse{
		OrderResponse: NewOrderResponse(&v.Order),
		CustomerName:  v.CustomerName,
		ProductName:   v.ProductName,
	}
}

type CreateOrderBody struct {
	UserID    int `json:"user_id" binding:"required"`
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}
