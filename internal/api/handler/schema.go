package handler

import (
	"time"

	"github.com/utilize/marketplace-api/internal/core/domain"
)

// --- Path / query parameters ---

type emailParam struct {
	Email string `param:"email" validate:"required,email"`
}

type idParam struct {
	ID string `param:"id" validate:"required,objectid"`
}

type categoryParam struct {
	ID string `param:"id" validate:"required"`
}

type sellerParam struct {
	Name string `param:"name" validate:"required"`
}

type wishlistParam struct {
	User string `param:"user" validate:"required"`
}

type myOrdersQuery struct {
	Email string `query:"email" validate:"omitempty,email"`
}

// --- Request bodies ---

// saveUserRequest is the body of PUT /user/:email. Admin cannot be claimed here.
type saveUserRequest struct {
	Email string `param:"email" json:"-"    validate:"required,email"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Role  string `json:"role"  validate:"omitempty,signup_role"`
}

type updateRoleRequest struct {
	Email string `param:"email" validate:"required,email"`
	Role  string `param:"role"  validate:"required,role"`
}

type purchaseRequest struct {
	ProductID       string  `json:"product_id"       validate:"required"`
	ProductName     string  `json:"product_name"     validate:"required"`
	BuyerName       string  `json:"buyerName"`
	BuyerEmail      string  `json:"buyerEmail"       validate:"omitempty,email"`
	Price           float64 `json:"price"            validate:"gte=0"`
	Phone           string  `json:"phone"`
	MeetingLocation string  `json:"meeting_location"`
}

type wishRequest struct {
	User        string  `json:"user"`
	ProductID   string  `json:"product_id"   validate:"required"`
	ProductName string  `json:"product_name" validate:"required"`
	Price       float64 `json:"price"        validate:"gte=0"`
	Image       string  `json:"image"`
}

type productRequest struct {
	Name          string  `json:"name"           validate:"required"`
	CategoryID    string  `json:"category_id"    validate:"required"`
	Seller        string  `json:"seller"         validate:"required"`
	SellerEmail   string  `json:"seller_email"   validate:"omitempty,email"`
	Image         string  `json:"image"`
	Location      string  `json:"location"`
	ResalePrice   float64 `json:"resale_price"   validate:"gte=0"`
	OriginalPrice float64 `json:"original_price" validate:"gte=0"`
	YearsOfUse    float64 `json:"years_of_use"   validate:"gte=0"`
	Condition     string  `json:"condition"`
	Description   string  `json:"description"`
	Phone         string  `json:"phone"`
}

// --- Responses ---

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type saveUserResponse struct {
	Result    *domain.WriteResult `json:"result"`
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expires_at"`
}

// successResponse wraps inserts the way the storefront client expects.
type successResponse struct {
	Success bool                `json:"success"`
	Result  *domain.WriteResult `json:"result"`
	Replay  bool                `json:"replay,omitempty"`
}
