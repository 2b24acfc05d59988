package models

// ConsumableItem is a lab supply tracked by quantity and supplier.
type ConsumableItem struct {
	CatalogEntry
	Name          string  `json:"name" gorm:"not null"`
	Category      string  `json:"category" gorm:"not null"`
	Unit          string  `json:"unit" gorm:"not null"`
	Supplier      *string `json:"supplier" gorm:"default:null"`
	CatalogNumber *string `json:"catalogNumber" gorm:"default:null"`
	Description   *string `json:"description" gorm:"default:null"`
}
