package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification.To holds either a user id hex or a role name, so events can be
// addressed to one person or to a whole audience ("admin", "manager").
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	To        string             `bson:"to" json:"to"`
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Sender     string             `bson:"sender" json:"sender"`
	SenderName string             `bson:"sender_name" json:"sender_name"`
	Content    string             `bson:"content" json:"content"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
