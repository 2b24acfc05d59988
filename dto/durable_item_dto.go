package dto

import "github.com/mycolab-catalog/models"

// DurableItemCreateRequest is the payload for creating a durable item.
type DurableItemCreateRequest struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
	SerialNumber *string `json:"serialNumber"`
	Location     *string `json:"location"`
	Description  *string `json:"description"`
}

// ToModel builds the durable item record to persist.
func (r DurableItemCreateRequest) ToModel() models.DurableItem {
	return models.DurableItem{
		Name:         r.Name,
		Category:     r.Category,
		Brand:        r.Brand,
		Model:        r.Model,
		SerialNumber: r.SerialNumber,
		Location:     r.Location,
		Description:  r.Description,
	}
}

// DurableItemUpdateRequest is the partial payload for updating a durable item.
type DurableItemUpdateRequest struct {
	Name         *string `json:"name" binding:"omitnil,min=1"`
	Category     *string `json:"category" binding:"omitnil,min=1"`
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
	SerialNumber *string `json:"serialNumber"`
	Location     *string `json:"location"`
	Description  *string `json:"description"`
}

// Apply merges the supplied fields onto an existing durable item.
func (r DurableItemUpdateRequest) Apply(di *models.DurableItem) {
	if r.Name != nil {
		di.Name = *r.Name
	}
	if r.Category != nil {
		di.Category = *r.Category
	}
	if r.Brand != nil {
		di.Brand = r.Brand
	}
	if r.Model != nil {
		di.Model = r.Model
	}
	if r.SerialNumber != nil {
		di.SerialNumber = r.SerialNumber
	}
	if r.Location != nil {
		di.Location = r.Location
	}
	if r.Description != nil {
		di.Description = r.Description
	}
}
