package transport

import "github.com/Skotchmaster/ecommerce_api/internal/models"

type CustomerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type CustomerAccountRequest struct {
	Username   *string `json:"username"`
	Password   *string `json:"password"`
	CustomerID *uint   `json:"customer_id"`
}

type ProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}

type StockRequest struct {
	Stock *int `json:"stock"`
}

type OrderLineRequest struct {
	ProductID *uint `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID *uint              `json:"customer_id"`
	Date       *Timestamp         `json:"date"`
	Products   []OrderLineRequest `json:"products"`
}

type UpdateOrderRequest struct {
	Date *Timestamp `json:"date"`
}

type OrderResponse struct {
	models.Order
	SkippedProductIDs []uint `json:"skipped_product_ids,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StockResponse struct {
	Stock int `json:"stock"`
}

type TotalResponse struct {
	TotalPrice float64 `json:"total_price"`
}
