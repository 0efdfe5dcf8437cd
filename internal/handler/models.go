package handler

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TeamRequest struct {
	Number    int    `json:"number" validate:"required,gt=0,lte=2147483647"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

type TeamResponse struct {
	ID        int64  `json:"id"`
	Number    int    `json:"number"`
	StartDate string `json:"start_date"`
	Name      string `json:"name"`
}

type TeamMemberRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Email string `json:"email" validate:"omitempty,email,max=254"`
	Team  int64  `json:"team" validate:"required,gt=0"`
}

type TeamMemberResponse struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Team    TeamResponse `json:"team"`
	Balance string       `json:"balance"`
}

type CategoryRequest struct {
	Name    string `json:"name" validate:"required,max=50"`
	Icon    string `json:"icon" validate:"max=20"`
	Visible *bool  `json:"visible"`
}

type CategoryResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Visible bool   `json:"visible"`
}

type ProductResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Image       string           `json:"image"`
	Description string           `json:"description"`
	Category    CategoryResponse `json:"category"`
	Visible     bool             `json:"visible"`
	CostExTax   string           `json:"cost_ex_tax"`
	PackSize    int              `json:"pack_size"`
	TaxRate     int              `json:"tax_rate"`
	Price       string           `json:"price"`
}

type OrderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"gte=1,lte=10000"`
}

type OrderRequest struct {
	By    int64              `json:"by" validate:"required,gt=0"`
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type OrderItemResponse struct {
	ID        int64           `json:"id"`
	Product   ProductResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice string          `json:"unit_price"`
	Amount    string          `json:"amount"`
}

type OrderResponse struct {
	ID          int64               `json:"id"`
	CreatedAt   string              `json:"created_at"`
	By          int64               `json:"by"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount string              `json:"total_amount"`
}

// PaymentRequest.Amount принимает и число, и строку.
// Completed принимается, но игнорируется: платеж создается в состоянии pending.
type PaymentRequest struct {
	By           int64           `json:"by" validate:"required,gt=0"`
	Description  string          `json:"description" validate:"max=255"`
	Amount       decimal.Decimal `json:"amount"`
	ProofPicture *string         `json:"proof_picture" validate:"omitempty,max=255"`
	Completed    bool            `json:"completed"`
}

type PaymentResponse struct {
	ID           int64   `json:"id"`
	By           int64   `json:"by"`
	Description  string  `json:"description"`
	Amount       string  `json:"amount"`
	ProofPicture *string `json:"proof_picture"`
	Completed    bool    `json:"completed"`
	CreatedAt    string  `json:"created_at"`
}

type SeriesResponse struct {
	Labels []string      `json:"labels"`
	Values []json.Number `json:"values"`
}

type SummaryResponse struct {
	TotalSpent      string  `json:"total_spent"`
	TotalOrders     int     `json:"total_orders"`
	AvgOrderValue   string  `json:"avg_order_value"`
	AvgOrdersPerDay string  `json:"avg_orders_per_day"`
	TotalBalance    *string `json:"total_balance,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
