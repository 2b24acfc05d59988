package dto

import "github.com/mycolab-catalog/models"

// ConsumableItemCreateRequest is the payload for creating a consumable item.
type ConsumableItemCreateRequest struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Unit          string  `json:"unit" binding:"required"`
	Supplier      *string `json:"supplier"`
	CatalogNumber *string `json:"catalogNumber"`
	Description   *string `json:"description"`
}

// ToModel builds the consumable item record to persist.
func (r ConsumableItemCreateRequest) ToModel() models.ConsumableItem {
	return models.ConsumableItem{
		Name:          r.Name,
		Category:      r.Category,
		Unit:          r.Unit,
		Supplier:      r.Supplier,
		CatalogNumber: r.CatalogNumber,
		Description:   r.Description,
	}
}

// ConsumableItemUpdateRequest is the partial payload for updating a consumable item.
type ConsumableItemUpdateRequest struct {
	Name          *string `json:"name" binding:"omitnil,min=1"`
	Category      *string `json:"category" binding:"omitnil,min=1"`
	Unit          *string `json:"unit" binding:"omitnil,min=1"`
	Supplier      *string `json:"supplier"`
	CatalogNumber *string `json:"catalogNumber"`
	Description   *string `json:"description"`
}

// Apply merges the supplied fields onto an existing consumable item.
func (r ConsumableItemUpdateRequest) Apply(ci *models.ConsumableItem) {
	if r.Name != nil {
		ci.Name = *r.Name
	}
	if r.Category != nil {
		ci.Category = *r.Category
	}
	if r.Unit != nil {
		ci.Unit = *r.Unit
	}
	if r.Supplier != nil {
		ci.Supplier = r.Supplier
	}
	if r.CatalogNumber != nil {
		ci.CatalogNumber = r.CatalogNumber
	}
	if r.Description != nil {
		ci.Description = r.Description
	}
}
