package validate

// ContactInquiryInput is the contact form payload.
type ContactInquiryInput struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,min=10"`
	Service string `json:"service" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

// QuoteRequestInput is the quote request form payload.
type QuoteRequestInput struct {
	CompanyName     string `json:"companyName" validate:"required,min=2"`
	ContactName     string `json:"contactName" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,min=10"`
	ServiceType     string `json:"serviceType" validate:"required"`
	ProjectLocation string `json:"projectLocation" validate:"required,min=3"`
	ProjectScope    string `json:"projectScope" validate:"required,min=50"`
	Timeline        string `json:"timeline" validate:"required"`
	Budget          string `json:"budget" validate:"omitempty"`
}

// PropertyInquiryInput is the listing lead form payload. The property
// fields are the snapshot the client copies from the listing card.
type PropertyInquiryInput struct {
	FullName         string `json:"fullName" validate:"required,min=2"`
	Phone            string `json:"phone" validate:"required,min=10"`
	Email            string `json:"email" validate:"omitempty,email"`
	Message          string `json:"message" validate:"required,min=5"`
	PropertyTitle    string `json:"propertyTitle" validate:"required"`
	PropertyLocation string `json:"propertyLocation" validate:"required"`
	PropertyPrice    string `json:"propertyPrice" validate:"required"`
	PropertyType     string `json:"propertyType" validate:"required"`
}

// JobApplicationInput is the careers form payload.
type JobApplicationInput struct {
	FullName    string `json:"fullName" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=10"`
	Position    string `json:"position" validate:"required"`
	Experience  string `json:"experience" validate:"required"`
	CoverLetter string `json:"coverLetter" validate:"required,min=50"`
}

// PropertyInput is the admin create-listing payload. Status is optional
// and defaults to available.
type PropertyInput struct {
	Title       string   `json:"title" validate:"required,min=2"`
	Type        string   `json:"type" validate:"required,oneof='For Sale' 'For Rent'"`
	Category    string   `json:"category" validate:"required,oneof=Land Commercial Residential Industrial"`
	Location    string   `json:"location" validate:"required"`
	Size        string   `json:"size" validate:"required"`
	Price       string   `json:"price" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Features    []string `json:"features"`
	Images      []string `json:"images"`
	Status      string   `json:"status" validate:"omitempty,oneof=available sold under_offer"`
}

// PropertyUpdateInput is the admin partial-update payload. Nil fields
// are not modified.
type PropertyUpdateInput struct {
	Title       *string   `json:"title" validate:"omitempty,min=2"`
	Type        *string   `json:"type" validate:"omitempty,oneof='For Sale' 'For Rent'"`
	Category    *string   `json:"category" validate:"omitempty,oneof=Land Commercial Residential Industrial"`
	Location    *string   `json:"location" validate:"omitempty,min=1"`
	Size        *string   `json:"size" validate:"omitempty,min=1"`
	Price       *string   `json:"price" validate:"omitempty,min=1"`
	Description *string   `json:"description" validate:"omitempty,min=1"`
	Features    *[]string `json:"features"`
	Images      *[]string `json:"images"`
	Status      *string   `json:"status" validate:"omitempty,oneof=available sold under_offer"`
}

// TestimonialInput is the admin create-testimonial payload. IsVisible
// defaults to true when omitted.
type TestimonialInput struct {
	Name      string `json:"name" validate:"required,min=2"`
	Role      string `json:"role" validate:"required"`
	Content   string `json:"content" validate:"required,min=10"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	IsVisible *bool  `json:"isVisible"`
}

// TestimonialUpdateInput is the admin partial-update payload.
type TestimonialUpdateInput struct {
	Name      *string `json:"name" validate:"omitempty,min=2"`
	Role      *string `json:"role" validate:"omitempty,min=1"`
	Content   *string `json:"content" validate:"omitempty,min=10"`
	Rating    *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	IsVisible *bool   `json:"isVisible"`
}

// LoginInput is the admin login payload.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
