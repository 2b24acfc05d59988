package models

// GrowParameter defines a measurable cultivation parameter and its bounds.
type GrowParameter struct {
	CatalogEntry
	Name         string   `json:"name" gorm:"not null"`
	Type         string   `json:"type" gorm:"not null"`
	Unit         string   `json:"unit" gorm:"not null"`
	MinValue     *float64 `json:"minValue" gorm:"default:null"`
	MaxValue     *float64 `json:"maxValue" gorm:"default:null"`
	OptimalValue *float64 `json:"optimalValue" gorm:"default:null"`
	Description  *string  `json:"description" gorm:"default:null"`
}
