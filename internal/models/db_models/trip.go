package db_models

import "github.com/lib/pq"

// Trip is the stored result of one generation request: the original
// parameters plus the generated plan and its distance annotation as
// jsonb documents. TripID is the pipeline-assigned identifier, distinct
// from the row's surrogate key.
type Trip struct {
	BaseModel
	TripID       string `gorm:"uniqueIndex;size:32"`
	UserID       string `gorm:"index"`
	TripTitle    string
	Destinations pq.StringArray `gorm:"type:text[]"`
	CategoryType string
	Days         int
	Members      int
	BudgetRange  string
	PlanJSON     string `gorm:"type:jsonb"`
	DistanceJSON string `gorm:"type:jsonb"`
}
