package http

import "github.com/frontendlab/demo-backend/internal/cart"

type ItemResponse struct {
	ProductID   int     `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"line_total"`
}

func NewItemResponse(i cart.Item) ItemResponse {
	return ItemResponse{
		ProductID:   i.ProductID,
		Name:        i.Name,
		Description: i.Description,
		Category:    i.Category,
		Price:       i.Price,
		Image:       i.Image,
		Quantity:    i.Quantity,
		LineTotal:   i.LineTotal(),
	}
}

type ViewResponse struct {
	Items     []ItemResponse `json:"items"`
	ItemCount int            `json:"item_count"`
	Total     float64        `json:"total"`
}

func NewViewResponse(v *cart.View) ViewResponse {
	items := make([]ItemResponse, len(v.Items))
	for i, item := range v.Items {
		items[i] = NewItemResponse(item)
	}
	return ViewResponse{
		Items:     items,
		ItemCount: v.ItemCount,
		Total:     v.Total,
	}
}

type AddItemBody struct {
	ProductID int `json:"product_id" binding:"required"`
}

type CheckoutResponse struct {
	Total float64 `json:"total"`
}
