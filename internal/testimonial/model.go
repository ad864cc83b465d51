// Package testimonial provides the customer testimonial model and data access.
package testimonial

import "time"

// Testimonial is a customer quote shown on the public site when visible.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	IsVisible bool      `json:"isVisible"`
	CreatedAt time.Time `json:"createdAt"`
}

// Update carries a partial update. Nil fields are left unchanged.
type Update struct {
	Name      *string
	Role      *string
	Content   *string
	Rating    *int
	IsVisible *bool
}
