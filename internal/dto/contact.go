package dto

// CreateContactRequest is a public contact form submission.
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
	Reason  string `json:"reason"`
}
