package domain

import "time"

// Purchase is an order placed by a buyer. BuyerEmail is not checked against
// the user store.
type Purchase struct {
	ID              string    `json:"_id,omitempty" bson:"_id,omitempty"`
	ProductID       string    `json:"product_id" bson:"product_id"`
	ProductName     string    `json:"product_name" bson:"product_name"`
	BuyerName       string    `json:"buyerName" bson:"buyerName"`
	BuyerEmail      string    `json:"buyerEmail" bson:"buyerEmail"`
	Price           float64   `json:"price" bson:"price"`
	Phone           string    `json:"phone,omitempty" bson:"phone,omitempty"`
	MeetingLocation string    `json:"meeting_location,omitempty" bson:"meeting_location,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

// WishlistItem is a product bookmarked by a user.
type WishlistItem struct {
	ID          string    `json:"_id,omitempty" bson:"_id,omitempty"`
	User        string    `json:"user" bson:"user"`
	ProductID   string    `json:"product_id" bson:"product_id"`
	ProductName string    `json:"product_name" bson:"product_name"`
	Price       float64   `json:"price" bson:"price"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// WriteResult mirrors the outcome of a single-document store write.
type WriteResult struct {
	InsertedID    string `json:"insertedId,omitempty"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
	DeletedCount  int64  `json:"deletedCount"`
}
