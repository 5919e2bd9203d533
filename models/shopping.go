// models/shopping.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShoppingItem model
type ShoppingItem struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID  string             `json:"clientId" bson:"clientId"`
	ItemName  string             `json:"itemName" bson:"itemName"`
	ItemLink  string             `json:"itemLink" bson:"itemLink"`
	ImageLink string             `json:"imageLink" bson:"imageLink"`
	Notes     string             `json:"notes" bson:"notes"`
	Purchased bool               `json:"purchased" bson:"purchased"`
}

// ShoppingItemRequest is the create/update payload. Purchased is a pointer so
// a missing flag is distinguishable from false.
type ShoppingItemRequest struct {
	ItemName  string `json:"itemName" validate:"required"`
	ItemLink  string `json:"itemLink" validate:"required"`
	ImageLink string `json:"imageLink"`
	Notes     string `json:"notes"`
	Purchased *bool  `json:"purchased"`
}
