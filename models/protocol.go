package models

// Protocol is an ordered lab procedure with its required equipment and materials.
type Protocol struct {
	CatalogEntry
	Name        string     `json:"name" gorm:"not null"`
	Type        string     `json:"type" gorm:"not null"`
	Steps       StringList `json:"steps" gorm:"type:text"`
	Duration    *float64   `json:"duration" gorm:"default:null"`
	Temperature *float64   `json:"temperature" gorm:"default:null"`
	Equipment   StringList `json:"equipment" gorm:"type:text"`
	Materials   StringList `json:"materials" gorm:"type:text"`
	Description *string    `json:"description" gorm:"default:null"`
}
