package models

import "time"

// Statuts de commande. "pending" à la création, puis selon la réponse Paynow.
const (
	OrderStatusPending         = "pending"
	OrderStatusAwaitingPayment = "awaiting_payment"
	OrderStatusPendingPayment  = "pending_payment" // fallback manuel (passerelle absente/injoignable)
	OrderStatusPaymentFailed   = "payment_failed"
	OrderStatusPaid            = "paid"
)

type Order struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	TotalAmount     float64   `json:"totalAmount"`
	Status          string    `json:"status"`
	PollURL         *string   `json:"pollUrl"`
	PaynowReference *string   `json:"paynowReference"`
	CreatedAt       time.Time `json:"createdAt"`
}

type OrderItem struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"orderId"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}
