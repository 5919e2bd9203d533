// models/profile.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileItem model
type ProfileItem struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID  string             `json:"clientId" bson:"clientId"`
	ItemName  string             `json:"itemName" bson:"itemName"`
	ItemType  string             `json:"itemType" bson:"itemType"`
	ItemLink  string             `json:"itemLink" bson:"itemLink"`
	ImageLink string             `json:"imageLink" bson:"imageLink"`
	Notes     string             `json:"notes" bson:"notes"`
	Purchased bool               `json:"purchased" bson:"purchased"`
}

// ProfileItemRequest is the create/update payload for profile items.
type ProfileItemRequest struct {
	ItemName  string `json:"itemName" validate:"required"`
	ItemType  string `json:"itemType" validate:"required"`
	ItemLink  string `json:"itemLink" validate:"required"`
	ImageLink string `json:"imageLink"`
	Notes     string `json:"notes"`
	Purchased *bool  `json:"purchased"`
}
