package dto

// CreateProjectRequest carries the fields accepted on project creation.
// Missing optional fields default to empty string/list; sort_order is
// assigned by the service when absent.
type CreateProjectRequest struct {
	Title         string   `json:"title" validate:"required"`
	DescriptionEN string   `json:"description_en"`
	DescriptionES string   `json:"description_es"`
	ImpactEN      string   `json:"impact_en"`
	ImpactES      string   `json:"impact_es"`
	Stack         []string `json:"stack"`
	Link          string   `json:"link"`
	Images        []string `json:"images"`
	Featured      bool     `json:"featured"`
	SortOrder     *int     `json:"sort_order"`
}

// ProjectPatch is a partial update: each field is present-or-absent, so
// an explicit empty value clears the field while an omitted one leaves
// the stored value unchanged.
type ProjectPatch struct {
	Title         *string   `json:"title"`
	DescriptionEN *string   `json:"description_en"`
	DescriptionES *string   `json:"description_es"`
	ImpactEN      *string   `json:"impact_en"`
	ImpactES      *string   `json:"impact_es"`
	Stack         *[]string `json:"stack"`
	Link          *string   `json:"link"`
	Images        *[]string `json:"images"`
	Featured      *bool     `json:"featured"`
	SortOrder     *int      `json:"sort_order"`
}
