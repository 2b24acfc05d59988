package dto

import "github.com/mycolab-catalog/models"

// CultureTypeCreateRequest is the payload for creating a culture type.
type CultureTypeCreateRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Medium      *string  `json:"medium"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	PH          *float64 `json:"ph"`
}

// ToModel builds the culture type record to persist.
func (r CultureTypeCreateRequest) ToModel() models.CultureType {
	return models.CultureType{
		Name:        r.Name,
		Description: r.Description,
		Medium:      r.Medium,
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		PH:          r.PH,
	}
}

// CultureTypeUpdateRequest is the partial payload for updating a culture type.
type CultureTypeUpdateRequest struct {
	Name        *string  `json:"name" binding:"omitnil,min=1"`
	Description *string  `json:"description"`
	Medium      *string  `json:"medium"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	PH          *float64 `json:"ph"`
}

// Apply merges the supplied fields onto an existing culture type.
func (r CultureTypeUpdateRequest) Apply(ct *models.CultureType) {
	if r.Name != nil {
		ct.Name = *r.Name
	}
	if r.Description != nil {
		ct.Description = r.Description
	}
	if r.Medium != nil {
		ct.Medium = r.Medium
	}
	if r.Temperature != nil {
		ct.Temperature = r.Temperature
	}
	if r.Humidity != nil {
		ct.Humidity = r.Humidity
	}
	if r.PH != nil {
		ct.PH = r.PH
	}
}
