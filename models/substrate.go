package models

// Substrate describes a growth substrate and its nutrient profile.
type Substrate struct {
	CatalogEntry
	Name        string     `json:"name" gorm:"not null"`
	Type        string     `json:"type" gorm:"not null"`
	Composition *string    `json:"composition" gorm:"default:null"`
	PH          *float64   `json:"ph" gorm:"column:ph;default:null"`
	Nutrients   StringList `json:"nutrients" gorm:"type:text"`
	Description *string    `json:"description" gorm:"default:null"`
}
