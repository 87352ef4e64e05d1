package handler

import (
	"github.com/utilize/marketplace-api/internal/core/domain"
)

// --- Request → domain ---

func toPurchase(r purchaseRequest, principal string) *domain.Purchase {
	buyer := r.BuyerEmail
	if buyer == "" {
		buyer = principal
	}
	return &domain.Purchase{
		ProductID:       r.ProductID,
		ProductName:     r.ProductName,
		BuyerName:       r.BuyerName,
		BuyerEmail:      buyer,
		Price:           r.Price,
		Phone:           r.Phone,
		MeetingLocation: r.MeetingLocation,
	}
}

func toWishlistItem(r wishRequest, principal string) *domain.WishlistItem {
	user := r.User
	if user == "" {
		user = principal
	}
	return &domain.WishlistItem{
		User:        user,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Price:       r.Price,
		Image:       r.Image,
	}
}

func toProduct(r productRequest, principal string) *domain.Product {
	sellerEmail := r.SellerEmail
	if sellerEmail == "" {
		sellerEmail = principal
	}
	return &domain.Product{
		Name:          r.Name,
		CategoryID:    r.CategoryID,
		Seller:        r.Seller,
		SellerEmail:   sellerEmail,
		Image:         r.Image,
		Location:      r.Location,
		ResalePrice:   r.ResalePrice,
		OriginalPrice: r.OriginalPrice,
		YearsOfUse:    r.YearsOfUse,
		Condition:     r.Condition,
		Description:   r.Description,
		Phone:         r.Phone,
	}
}

func toUserProfile(r saveUserRequest) domain.UserProfile {
	p := domain.UserProfile{Email: r.Email, Name: r.Name, Image: r.Image}
	if r.Role != "" {
		role := domain.Role(r.Role)
		p.Role = &role
	}
	return p
}
