package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order lifecycle: Pending Verification -> Verified -> Delivered, or
// Pending Verification -> Rejected.
const (
	OrderPendingVerification = "Pending Verification"
	OrderVerified            = "Verified"
	OrderRejected            = "Rejected"
	OrderDelivered           = "Delivered"
)

type OrderItem struct {
	ProductID       string  `bson:"product_id" json:"product_id"`
	Name            string  `bson:"name" json:"name"`
	Quantity        int64   `bson:"quantity" json:"quantity"`
	PriceAtPurchase float64 `bson:"price_at_purchase" json:"priceAtPurchase"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          string             `bson:"user_id" json:"user_id"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"total_amount" json:"total_amount"`
	PaymentUTR      string             `bson:"payment_utr" json:"paymentUTR"`
	ShippingAddress string             `bson:"shipping_address" json:"shippingAddress"`
	Status          string             `bson:"status" json:"status"`
	OTP             string             `bson:"otp,omitempty" json:"-"`
	ViewToken       string             `bson:"view_token" json:"view_token"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

type OrderItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required"`
}

type CreateOrderInput struct {
	Items           []OrderItemInput `json:"items" binding:"required"`
	PaymentUTR      string           `json:"paymentUTR" binding:"required"`
	ShippingAddress string           `json:"shippingAddress" binding:"required"`
}
