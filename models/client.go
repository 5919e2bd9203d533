// models/client.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client model
type Client struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName    string             `json:"firstName" bson:"firstName"`
	LastName     string             `json:"lastName" bson:"lastName"`
	Email        string             `json:"email" bson:"email"`
	IsAdmin      bool               `json:"isAdmin" bson:"isAdmin"`
	IsSuperAdmin bool               `json:"isSuperAdmin" bson:"isSuperAdmin"`
	Credits      int                `json:"credits" bson:"credits"`
}

// CreateClientRequest is the admin-only client creation payload.
type CreateClientRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	IsAdmin      bool   `json:"isAdmin"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
	Credits      int    `json:"credits"`
}
