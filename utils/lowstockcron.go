package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/22230902mani/Inventory-Management-System-sub000/config"
	"github.com/22230902mani/Inventory-Management-System-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CheckLowStock runs daily from the scheduler. Every active product at or
// below its threshold produces one unread notification for the admin
// audience; re-running the job refreshes the message instead of stacking
// duplicates.
func CheckLowStock() {
	log.Println("CheckLowStock started")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.ProductActive,
		"$expr":  bson.M{"$lte": []string{"$quantity", "$low_stock_threshold"}},
	}

	cursor, err := config.ProductCollection.Find(ctx, filter)
	if err != nil {
		log.Printf("CheckLowStock: failed to query products: %v", err)
		return
	}
	defer cursor.Close(ctx)

	flagged := 0
	for cursor.Next(ctx) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			log.Printf("CheckLowStock: decode error: %v", err)
			continue
		}

		title := fmt.Sprintf("Low stock: %s", product.SKU)
		update := bson.M{
			"$set": bson.M{
				"message":    fmt.Sprintf("%s has %d units left (threshold %d)", product.Name, product.Quantity, product.LowStockThreshold),
				"read":       false,
				"created_at": time.Now(),
			},
		}
		_, err := config.NotificationCollection.UpdateOne(ctx,
			bson.M{"to": models.RoleAdmin, "title": title},
			update, options.Update().SetUpsert(true))
		if err != nil {
			log.Printf("CheckLowStock: failed to upsert notification for %s: %v", product.SKU, err)
			continue
		}
		flagged++
	}

	if err := cursor.Err(); err != nil {
		log.Printf("CheckLowStock: cursor error: %v", err)
	}

	log.Printf("CheckLowStock completed, %d products flagged", flagged)
}

// CleanupOldSessions drops login-audit records older than 30 days.
func CleanupOldSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -30)
	res, err := config.SessionCollection.DeleteMany(ctx, bson.M{"timestamp": bson.M{"$lt": cutoff}})
	if err != nil {
		log.Printf("CleanupOldSessions: %v", err)
		return
	}
	log.Printf("CleanupOldSessions removed %d sessions", res.DeletedCount)
}
