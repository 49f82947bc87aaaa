package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/22230902mani/Inventory-Management-System-sub000/config"
	"github.com/22230902mani/Inventory-Management-System-sub000/models"
	"github.com/22230902mani/Inventory-Management-System-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var errUnknownAction = errors.New("unknown action")

// statusForAction maps a payment verification action to the order status it
// produces.
func statusForAction(action string) (string, error) {
	switch action {
	case "approve":
		return models.OrderVerified, nil
	case "reject":
		return models.OrderRejected, nil
	}
	return "", errUnknownAction
}

// CreateOrder places an order from the caller's cart. Stock for every item
// is taken with a guarded $inc; if any line cannot be filled the already
// taken stock is returned and the order is refused.
func CreateOrder(c *gin.Context) {
	var input models.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidUTR(input.PaymentUTR) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "UTR must be exactly 12 digits"})
		return
	}
	if len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order has no items"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var items []models.OrderItem
	var taken []models.OrderItem
	total := 0.0

	for _, line := range input.Items {
		if line.Quantity <= 0 {
			releaseStock(ctx, taken)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item quantity must be positive"})
			return
		}

		objID, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			releaseStock(ctx, taken)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID in cart"})
			return
		}

		var product models.Product
		err = config.ProductCollection.FindOneAndUpdate(ctx,
			bson.M{
				"_id":      objID,
				"status":   models.ProductActive,
				"quantity": bson.M{"$gte": line.Quantity},
			},
			bson.M{
				"$inc": bson.M{"quantity": -line.Quantity},
				"$set": bson.M{"updated_at": time.Now()},
			},
		).Decode(&product)
		if err != nil {
			releaseStock(ctx, taken)
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusConflict, gin.H{"error": "Not enough stock for one of the items"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reserve stock"})
			}
			return
		}

		item := models.OrderItem{
			ProductID:       line.ProductID,
			Name:            product.Name,
			Quantity:        line.Quantity,
			PriceAtPurchase: product.Price,
		}
		items = append(items, item)
		taken = append(taken, item)
		total += product.Price * float64(line.Quantity)
	}

	order := models.Order{
		UserID:          c.GetString("userID"),
		Items:           items,
		TotalAmount:     total,
		PaymentUTR:      input.PaymentUTR,
		ShippingAddress: input.ShippingAddress,
		Status:          models.OrderPendingVerification,
		ViewToken:       uuid.NewString(),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	result, err := config.OrderCollection.InsertOne(ctx, order)
	if err != nil {
		releaseStock(ctx, taken)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	notifyRole(ctx, models.RoleManager, "New order",
		fmt.Sprintf("Order for %.2f is waiting for payment verification", total))

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Order placed, payment pending verification",
		"id":         result.InsertedID,
		"view_token": order.ViewToken,
		"total":      total,
	})
}

// releaseStock undoes stock reservations after a failed order create or a
// rejected payment.
func releaseStock(ctx context.Context, items []models.OrderItem) {
	for _, item := range items {
		objID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			continue
		}
		_, err = config.ProductCollection.UpdateOne(ctx,
			bson.M{"_id": objID},
			bson.M{"$inc": bson.M{"quantity": item.Quantity}})
		if err != nil {
			log.Printf("Failed to release stock for product %s: %v", item.ProductID, err)
		}
	}
}

func GetMyOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.OrderCollection.Find(ctx, bson.M{"user_id": c.GetString("userID")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func GetAllOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	cursor, err := config.OrderCollection.Find(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode orders"})
		return
	}

	type ExtendedOrder struct {
		models.Order
		FullName string `json:"fullname"`
	}

	var extendedOrders []ExtendedOrder
	for _, order := range orders {
		fullName := "Unknown"
		if userID, err := primitive.ObjectIDFromHex(order.UserID); err == nil {
			var user struct {
				Name string `bson:"name"`
			}
			if err := config.UserCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err == nil {
				fullName = user.Name
			}
		}
		extendedOrders = append(extendedOrders, ExtendedOrder{Order: order, FullName: fullName})
	}

	c.JSON(http.StatusOK, extendedOrders)
}

// GetOrderByToken serves the public order tracking page, no auth required.
func GetOrderByToken(c *gin.Context) {
	var order models.Order
	err := config.OrderCollection.FindOne(context.TODO(), bson.M{"view_token": c.Param("token")}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       order.Status,
		"items":        order.Items,
		"total_amount": order.TotalAmount,
		"created_at":   order.CreatedAt,
	})
}

// VerifyPayment approves or rejects a pending order. Approval issues a
// delivery OTP and mails it to the buyer; rejection returns the reserved
// stock. An already-decided order cannot be decided again.
func VerifyPayment(c *gin.Context) {
	var input struct {
		OrderID string `json:"orderId" binding:"required"`
		Action  string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newStatus, err := statusForAction(input.Action)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Action must be approve or reject"})
		return
	}

	objID, err := primitive.ObjectIDFromHex(input.OrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	update := bson.M{"status": newStatus, "updated_at": time.Now()}
	otp := ""
	if newStatus == models.OrderVerified {
		otp = utils.GenerateOTP()
		update["otp"] = otp
	}

	var order models.Order
	err = config.OrderCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "status": models.OrderPendingVerification},
		bson.M{"$set": update},
	).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusConflict, gin.H{"error": "Order is not pending verification"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		}
		return
	}

	if newStatus == models.OrderRejected {
		releaseStock(ctx, order.Items)
		notifyUser(ctx, order.UserID, "Payment rejected",
			fmt.Sprintf("Payment for your order of %.2f could not be verified", order.TotalAmount))
		c.JSON(http.StatusOK, gin.H{"message": "Order rejected", "status": newStatus})
		return
	}

	sendDeliveryOTP(ctx, order.UserID, otp)
	notifyUser(ctx, order.UserID, "Payment verified",
		"Your payment was verified. Show the delivery code from your email when the order arrives.")

	c.JSON(http.StatusOK, gin.H{"message": "Payment verified, OTP sent to buyer", "status": newStatus})
}

func sendDeliveryOTP(ctx context.Context, userID, otp string) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return
	}
	var user models.User
	if err := config.UserCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		log.Printf("Failed to load buyer %s for OTP mail: %v", userID, err)
		return
	}
	err = utils.SendEmail(user.Email, "Your delivery code",
		"Your delivery confirmation code is "+otp+". Give it to the courier when your order arrives.")
	if err != nil {
		log.Printf("Failed to send OTP email to %s: %v", user.Email, err)
	}
}

// VerifyDelivery marks a verified order as delivered when the OTP matches.
func VerifyDelivery(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var input struct {
		OTP string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	err = config.OrderCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "status": models.OrderVerified, "otp": input.OTP},
		bson.M{
			"$set":   bson.M{"status": models.OrderDelivered, "updated_at": time.Now()},
			"$unset": bson.M{"otp": ""},
		},
	).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong OTP or order is not awaiting delivery"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		}
		return
	}

	notifyUser(ctx, order.UserID, "Order delivered",
		fmt.Sprintf("Your order of %.2f was delivered", order.TotalAmount))

	c.JSON(http.StatusOK, gin.H{"message": "Delivery confirmed", "status": models.OrderDelivered})
}
