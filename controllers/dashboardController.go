package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/22230902mani/Inventory-Management-System-sub000/config"
	"github.com/22230902mani/Inventory-Management-System-sub000/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DashboardStats aggregates the headline numbers the dashboard cards show.
func DashboardStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	totalProducts, err := config.ProductCollection.CountDocuments(ctx, bson.M{"status": models.ProductActive})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
		return
	}

	pendingProducts, err := config.ProductCollection.CountDocuments(ctx, bson.M{"status": models.ProductPending})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count pending products"})
		return
	}

	lowStock, err := config.ProductCollection.CountDocuments(ctx, bson.M{
		"status": models.ProductActive,
		"$expr":  bson.M{"$lte": []string{"$quantity", "$low_stock_threshold"}},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count low stock products"})
		return
	}

	totalUsers, err := config.UserCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
		return
	}

	pendingOrders, err := config.OrderCollection.CountDocuments(ctx, bson.M{"status": models.OrderPendingVerification})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
		return
	}

	// Revenue and order count for delivered orders only.
	pipeline := []bson.M{
		{"$match": bson.M{"status": models.OrderDelivered}},
		{"$group": bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": "$total_amount"},
			"count":   bson.M{"$sum": 1},
		}},
	}
	cursor, err := config.OrderCollection.Aggregate(ctx, pipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate orders"})
		return
	}
	defer cursor.Close(ctx)

	var agg []struct {
		Revenue float64 `bson:"revenue"`
		Count   int64   `bson:"count"`
	}
	if err = cursor.All(ctx, &agg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode aggregation"})
		return
	}

	revenue := 0.0
	delivered := int64(0)
	if len(agg) > 0 {
		revenue = agg[0].Revenue
		delivered = agg[0].Count
	}

	c.JSON(http.StatusOK, gin.H{
		"totalProducts":   totalProducts,
		"pendingProducts": pendingProducts,
		"lowStock":        lowStock,
		"totalUsers":      totalUsers,
		"pendingOrders":   pendingOrders,
		"deliveredOrders": delivered,
		"revenue":         revenue,
	})
}

// DashboardUsersList is the lightweight user listing for the messaging panel.
func DashboardUsersList(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.UserCollection.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"name": 1, "email": 1, "role": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	defer cursor.Close(ctx)

	var users []bson.M
	if err = cursor.All(ctx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// SendMessage broadcasts a message to the shared inbox.
func SendMessage(c *gin.Context) {
	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	senderName := "Unknown"
	if senderID, err := primitive.ObjectIDFromHex(c.GetString("userID")); err == nil {
		var sender struct {
			Name string `bson:"name"`
		}
		if err := config.UserCollection.FindOne(ctx, bson.M{"_id": senderID}).Decode(&sender); err == nil {
			senderName = sender.Name
		}
	}

	message := models.Message{
		Sender:     c.GetString("userID"),
		SenderName: senderName,
		Content:    input.Content,
		CreatedAt:  time.Now(),
	}

	result, err := config.MessageCollection.InsertOne(ctx, message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent", "id": result.InsertedID})
}

// GetMessages returns the shared inbox, newest first. Polled by the SPA.
func GetMessages(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.MessageCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(100))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err = cursor.All(ctx, &messages); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}
