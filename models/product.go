package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product status values. Sales users create products as "pending" proposals,
// admins flip them to "active" or "rejected".
const (
	ProductPending  = "pending"
	ProductActive   = "active"
	ProductRejected = "rejected"
)

type Product struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SKU               string             `bson:"sku" json:"sku" binding:"required"`
	Barcode           string             `bson:"barcode,omitempty" json:"barcode,omitempty"`
	Name              string             `bson:"name" json:"name" binding:"required"`
	Category          string             `bson:"category" json:"category" binding:"required"`
	Price             float64            `bson:"price" json:"price" binding:"required"`
	Quantity          int64              `bson:"quantity" json:"quantity"`
	LowStockThreshold int64              `bson:"low_stock_threshold" json:"lowStockThreshold"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	Images            []string           `bson:"images,omitempty" json:"images,omitempty"`
	Status            string             `bson:"status" json:"status"`
	AddedBy           string             `bson:"added_by" json:"addedBy"`
	CreatedAt         time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt         time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type UpdateProduct struct {
	SKU               string   `json:"sku,omitempty"`
	Barcode           string   `json:"barcode,omitempty"`
	Name              string   `json:"name,omitempty"`
	Category          string   `json:"category,omitempty"`
	Price             float64  `json:"price,omitempty"`
	LowStockThreshold int64    `json:"lowStockThreshold,omitempty"`
	Description       string   `json:"description,omitempty"`
	Images            []string `json:"images,omitempty"`
}
