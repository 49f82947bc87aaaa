package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client                 *mongo.Client
	UserCollection         *mongo.Collection
	ProductCollection      *mongo.Collection
	OrderCollection        *mongo.Collection
	NotificationCollection *mongo.Collection
	MessageCollection      *mongo.Collection
	SessionCollection      *mongo.Collection
)

func ConnectDatabase() {
	client, err := mongo.NewClient(options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal(err)
	}

	Client = client
	UserCollection = Client.Database("inventory").Collection("users")
	ProductCollection = Client.Database("inventory").Collection("products")
	OrderCollection = Client.Database("inventory").Collection("orders")
	NotificationCollection = Client.Database("inventory").Collection("notifications")
	MessageCollection = Client.Database("inventory").Collection("messages")
	SessionCollection = Client.Database("inventory").Collection("sessions")
	log.Println("Connected to MongoDB")
}
