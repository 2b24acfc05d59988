package dto

import "github.com/mycolab-catalog/models"

// SubstrateCreateRequest is the payload for creating a substrate.
type SubstrateCreateRequest struct {
	Name        string            `json:"name" binding:"required"`
	Type        string            `json:"type" binding:"required"`
	Composition *string           `json:"composition"`
	PH          *float64          `json:"ph"`
	Nutrients   models.StringList `json:"nutrients"`
	Description *string           `json:"description"`
}

// ToModel builds the substrate record to persist.
func (r SubstrateCreateRequest) ToModel() models.Substrate {
	return models.Substrate{
		Name:        r.Name,
		Type:        r.Type,
		Composition: r.Composition,
		PH:          r.PH,
		Nutrients:   defaultList(r.Nutrients),
		Description: r.Description,
	}
}

// SubstrateUpdateRequest is the partial payload for updating a substrate.
type SubstrateUpdateRequest struct {
	Name        *string            `json:"name" binding:"omitnil,min=1"`
	Type        *string            `json:"type" binding:"omitnil,min=1"`
	Composition *string            `json:"composition"`
	PH          *float64           `json:"ph"`
	Nutrients   *models.StringList `json:"nutrients"`
	Description *string            `json:"description"`
}

// Apply merges the supplied fields onto an existing substrate.
func (r SubstrateUpdateRequest) Apply(s *models.Substrate) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Type != nil {
		s.Type = *r.Type
	}
	if r.Composition != nil {
		s.Composition = r.Composition
	}
	if r.PH != nil {
		s.PH = r.PH
	}
	if r.Nutrients != nil {
		s.Nutrients = *r.Nutrients
	}
	if r.Description != nil {
		s.Description = r.Description
	}
}
