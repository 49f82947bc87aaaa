package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Valid values for User.Role.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleSales   = "sales"
	RoleUser    = "user"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role       string             `bson:"role" json:"role"`
	IsVerified bool               `bson:"is_verified" json:"isVerified"`
	Password   string             `bson:"password,omitempty" json:"password,omitempty"`
	CreatedAt  time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleSales, RoleUser:
		return true
	}
	return false
}

type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Role      string             `bson:"role"`
	IP        string             `bson:"ip"`
	Device    string             `bson:"device"`
	Timestamp time.Time          `bson:"timestamp"`
}
