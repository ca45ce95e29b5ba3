package models

// ExperienceType partitions experiences between detailed cards and list items.
type ExperienceType string

const (
	ExperienceMain  ExperienceType = "main"
	ExperienceMinor ExperienceType = "minor"
)

// Experience is a work/activity history entry. Minor entries carry a
// context label instead of a company.
type Experience struct {
	ID            int64          `db:"id" json:"id"`
	Role          string         `db:"role" json:"role"`
	Company       string         `db:"company" json:"company"`
	Period        string         `db:"period" json:"period"`
	DescriptionEN string         `db:"description_en" json:"description_en"`
	DescriptionES string         `db:"description_es" json:"description_es"`
	Tech          StringList     `db:"tech" json:"tech"`
	Type          ExperienceType `db:"type" json:"type"`
	Context       string         `db:"context" json:"context"`
	LayoutDelay   string         `db:"layout_delay" json:"layout_delay"`
}
