package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/22230902mani/Inventory-Management-System-sub000/config"
	"github.com/22230902mani/Inventory-Management-System-sub000/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateProduct adds a product. Sales users create proposals that stay
// "pending" until an admin decides; admins and managers add straight to
// active inventory.
func CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := c.GetString("role")
	if role == models.RoleSales {
		product.Status = models.ProductPending
	} else {
		product.Status = models.ProductActive
	}
	product.AddedBy = c.GetString("userID")
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := config.ProductCollection.CountDocuments(ctx, bson.M{"sku": product.SKU})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check SKU"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "SKU already exists"})
		return
	}

	result, err := config.ProductCollection.InsertOne(ctx, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	if product.Status == models.ProductPending {
		notifyRole(ctx, models.RoleAdmin, "New product proposal",
			fmt.Sprintf("%s (%s) is waiting for approval", product.Name, product.SKU))
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "id": result.InsertedID, "status": product.Status})
}

func GetAllProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"status": models.ProductActive}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	cursor, err := config.ProductCollection.Find(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func GetProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	err = config.ProductCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

func GetProductByBarcode(c *gin.Context) {
	barcode := c.Param("code")

	var product models.Product
	err := config.ProductCollection.FindOne(context.TODO(), bson.M{"barcode": barcode}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "No product with this barcode"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

func GetPendingProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.ProductCollection.Find(ctx, bson.M{"status": models.ProductPending})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pending products"})
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func ApproveProduct(c *gin.Context) {
	decideProduct(c, models.ProductActive, "approved")
}

func RejectProduct(c *gin.Context) {
	decideProduct(c, models.ProductRejected, "rejected")
}

// decideProduct flips a pending proposal to its final status and notifies
// the sales user who proposed it. Only pending products can be decided.
func decideProduct(c *gin.Context, status, verb string) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	err = config.ProductCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "status": models.ProductPending},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusConflict, gin.H{"error": "Product is not pending approval"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}

	notifyUser(ctx, product.AddedBy, "Proposal "+verb,
		fmt.Sprintf("Your product %s (%s) was %s", product.Name, product.SKU, verb))

	c.JSON(http.StatusOK, gin.H{"message": "Product " + verb, "status": status})
}

func UpdateProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var input models.UpdateProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.SKU != "" {
		update["sku"] = input.SKU
	}
	if input.Barcode != "" {
		update["barcode"] = input.Barcode
	}
	if input.Name != "" {
		update["name"] = input.Name
	}
	if input.Category != "" {
		update["category"] = input.Category
	}
	if input.Price != 0 {
		update["price"] = input.Price
	}
	if input.LowStockThreshold != 0 {
		update["low_stock_threshold"] = input.LowStockThreshold
	}
	if input.Description != "" {
		update["description"] = input.Description
	}
	if input.Images != nil {
		update["images"] = input.Images
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.ProductCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// AdjustStock applies a relative delta with an atomic $inc. The filter
// forbids decrements below zero, so two operators adjusting the same
// product at once cannot oversell it.
func AdjustStock(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var input struct {
		Delta int64 `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"_id": objID}
	if input.Delta < 0 {
		filter["quantity"] = bson.M{"$gte": -input.Delta}
	}

	var product models.Product
	err = config.ProductCollection.FindOneAndUpdate(ctx, filter,
		bson.M{
			"$inc": bson.M{"quantity": input.Delta},
			"$set": bson.M{"updated_at": time.Now()},
		},
	).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusConflict, gin.H{"error": "Not enough stock or product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust stock"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock adjusted", "quantity": product.Quantity + input.Delta})
}

func DeleteProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.ProductCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
