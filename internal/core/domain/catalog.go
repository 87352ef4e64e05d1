package domain

import "time"

// Category groups products on the home page.
type Category struct {
	ID    string `json:"_id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
}

// Product is a second-hand listing posted by a seller.
type Product struct {
	ID            string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	CategoryID    string    `json:"category_id" bson:"category_id"`
	Seller        string    `json:"seller" bson:"seller"`
	SellerEmail   string    `json:"seller_email,omitempty" bson:"seller_email,omitempty"`
	Image         string    `json:"image,omitempty" bson:"image,omitempty"`
	Location      string    `json:"location,omitempty" bson:"location,omitempty"`
	ResalePrice   float64   `json:"resale_price" bson:"resale_price"`
	OriginalPrice float64   `json:"original_price,omitempty" bson:"original_price,omitempty"`
	YearsOfUse    float64   `json:"years_of_use,omitempty" bson:"years_of_use,omitempty"`
	Condition     string    `json:"condition,omitempty" bson:"condition,omitempty"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Phone         string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Advertised    bool      `json:"ad" bson:"ad"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
