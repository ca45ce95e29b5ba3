package models

import "time"

// Project is a portfolio entry with bilingual copy, tech stack, optional
// images and a featured flag controlling the display section.
type Project struct {
	ID            int64      `db:"id" json:"id"`
	Title         string     `db:"title" json:"title"`
	DescriptionEN string     `db:"description_en" json:"description_en"`
	DescriptionES string     `db:"description_es" json:"description_es"`
	ImpactEN      string     `db:"impact_en" json:"impact_en"`
	ImpactES      string     `db:"impact_es" json:"impact_es"`
	Stack         StringList `db:"stack" json:"stack"`
	Link          string     `db:"link" json:"link"`
	Images        StringList `db:"images" json:"images"`
	Featured      bool       `db:"featured" json:"featured"`
	SortOrder     int        `db:"sort_order" json:"sort_order"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}
