package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/22230902mani/Inventory-Management-System-sub000/config"
	"github.com/22230902mani/Inventory-Management-System-sub000/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// notifyUser inserts a notification addressed to a single user id.
func notifyUser(ctx context.Context, userID, title, message string) {
	if userID == "" {
		return
	}
	_, err := config.NotificationCollection.InsertOne(ctx, models.Notification{
		To:        userID,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.Printf("Failed to insert notification for %s: %v", userID, err)
	}
}

// notifyRole inserts a notification addressed to everyone with the role.
func notifyRole(ctx context.Context, role, title, message string) {
	_, err := config.NotificationCollection.InsertOne(ctx, models.Notification{
		To:        role,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.Printf("Failed to insert notification for role %s: %v", role, err)
	}
}

// recipientFilter matches notifications addressed to the caller directly or
// to the caller's role.
func recipientFilter(userID, role string) bson.M {
	return bson.M{"to": bson.M{"$in": []string{userID, role}}}
}

// GetNotifications returns the caller's notifications, newest first. The SPA
// polls this every few seconds.
func GetNotifications(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := recipientFilter(c.GetString("userID"), c.GetString("role"))

	cursor, err := config.NotificationCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(100))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err = cursor.All(ctx, &notifications); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkAllNotificationsRead marks every notification addressed to the caller
// as read, and nobody else's.
func MarkAllNotificationsRead(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := recipientFilter(c.GetString("userID"), c.GetString("role"))
	filter["read"] = false

	result, err := config.NotificationCollection.UpdateMany(ctx, filter,
		bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notifications marked read", "modified": result.ModifiedCount})
}
