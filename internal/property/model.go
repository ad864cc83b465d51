// Package property provides the property listing domain model and data access.
package property

import "time"

// Type says whether a listing is offered for sale or for rent.
type Type string

const (
	TypeForSale Type = "For Sale"
	TypeForRent Type = "For Rent"
)

// ValidType returns true if s is a known listing type.
func ValidType(s string) bool {
	switch Type(s) {
	case TypeForSale, TypeForRent:
		return true
	}
	return false
}

// Category classifies the kind of property.
type Category string

const (
	CategoryLand        Category = "Land"
	CategoryCommercial  Category = "Commercial"
	CategoryResidential Category = "Residential"
	CategoryIndustrial  Category = "Industrial"
)

// ValidCategory returns true if s is a known category.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryLand, CategoryCommercial, CategoryResidential, CategoryIndustrial:
		return true
	}
	return false
}

// Status represents where a listing is in its sales lifecycle.
type Status string

const (
	StatusAvailable  Status = "available"
	StatusSold       Status = "sold"
	StatusUnderOffer Status = "under_offer"
)

// ValidStatus returns true if s is a known listing status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusAvailable, StatusSold, StatusUnderOffer:
		return true
	}
	return false
}

// Property is a managed listing shown on the public site.
type Property struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        Type      `json:"type"`
	Category    Category  `json:"category"`
	Location    string    `json:"location"`
	Size        string    `json:"size"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	Images      []string  `json:"images"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Update carries a partial update. Nil fields are left unchanged.
type Update struct {
	Title       *string
	Type        *Type
	Category    *Category
	Location    *string
	Size        *string
	Price       *string
	Description *string
	Features    *[]string
	Images      *[]string
	Status      *Status
}
