package models

// Strain represents a fungal strain kept in the lab catalog.
type Strain struct {
	CatalogEntry
	Name            string     `json:"name" gorm:"not null"`
	Species         string     `json:"species" gorm:"not null"`
	Description     *string    `json:"description" gorm:"default:null"`
	Origin          *string    `json:"origin" gorm:"default:null"`
	Characteristics StringList `json:"characteristics" gorm:"type:text"`
}
