package dto

// CreateExperienceRequest carries the fields accepted on experience creation.
type CreateExperienceRequest struct {
	Role          string   `json:"role" validate:"required"`
	Company       string   `json:"company"`
	Period        string   `json:"period"`
	DescriptionEN string   `json:"description_en"`
	DescriptionES string   `json:"description_es"`
	Tech          []string `json:"tech"`
	Type          string   `json:"type" validate:"omitempty,oneof=main minor"`
	Context       string   `json:"context"`
	LayoutDelay   string   `json:"layout_delay"`
}

// ExperiencePatch is a partial update with present-or-absent fields.
type ExperiencePatch struct {
	Role          *string   `json:"role"`
	Company       *string   `json:"company"`
	Period        *string   `json:"period"`
	DescriptionEN *string   `json:"description_en"`
	DescriptionES *string   `json:"description_es"`
	Tech          *[]string `json:"tech"`
	Type          *string   `json:"type" validate:"omitempty,oneof=main minor"`
	Context       *string   `json:"context"`
	LayoutDelay   *string   `json:"layout_delay"`
}
