package leads

import "time"

// Lead is one stored contact-form submission. Leads are created once and never updated.
type Lead struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	BusinessName  *string   `json:"business_name"`
	ContactNumber *string   `json:"contact_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmitRequest is the wire shape posted by the landing page form.
type SubmitRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	BusinessName  string `json:"business_name"`
	ContactNumber string `json:"contact_number"`
}

// CreateLeadInput is what the store persists. Optional fields are nil when not supplied.
type CreateLeadInput struct {
	Name          string
	Email         string
	BusinessName  *string
	ContactNumber *string
}

// Input translates the wire request into the store input. Empty optional fields become nil.
func (r SubmitRequest) Input() CreateLeadInput {
	return CreateLeadInput{
		Name:          r.Name,
		Email:         r.Email,
		BusinessName:  optional(r.BusinessName),
		ContactNumber: optional(r.ContactNumber),
	}
}

// Validate checks that name and email are present. Values are not trimmed and
// email format is not checked.
func (in CreateLeadInput) Validate() error {
	if in.Name == "" || in.Email == "" {
		return ErrValidation
	}
	return nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
