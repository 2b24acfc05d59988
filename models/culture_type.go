package models

// CultureType describes a culture medium profile used to propagate strains.
type CultureType struct {
	CatalogEntry
	Name        string   `json:"name" gorm:"not null"`
	Description *string  `json:"description" gorm:"default:null"`
	Medium      *string  `json:"medium" gorm:"default:null"`
	Temperature *float64 `json:"temperature" gorm:"default:null"`
	Humidity    *float64 `json:"humidity" gorm:"default:null"`
	PH          *float64 `json:"ph" gorm:"column:ph;default:null"`
}
