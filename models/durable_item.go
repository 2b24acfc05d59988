package models

// DurableItem is a piece of lab equipment tracked by location and serial number.
type DurableItem struct {
	CatalogEntry
	Name         string  `json:"name" gorm:"not null"`
	Category     string  `json:"category" gorm:"not null"`
	Brand        *string `json:"brand" gorm:"default:null"`
	Model        *string `json:"model" gorm:"default:null"`
	SerialNumber *string `json:"serialNumber" gorm:"default:null"`
	Location     *string `json:"location" gorm:"default:null"`
	Description  *string `json:"description" gorm:"default:null"`
}
