package dto

import "github.com/mycolab-catalog/models"

// StrainCreateRequest is the payload for creating a strain.
type StrainCreateRequest struct {
	Name            string            `json:"name" binding:"required"`
	Species         string            `json:"species" binding:"required"`
	Description     *string           `json:"description"`
	Origin          *string           `json:"origin"`
	Characteristics models.StringList `json:"characteristics"`
}

// ToModel builds the strain record to persist.
func (r StrainCreateRequest) ToModel() models.Strain {
	return models.Strain{
		Name:            r.Name,
		Species:         r.Species,
		Description:     r.Description,
		Origin:          r.Origin,
		Characteristics: defaultList(r.Characteristics),
	}
}

// StrainUpdateRequest is the partial payload for updating a strain.
type StrainUpdateRequest struct {
	Name            *string            `json:"name" binding:"omitnil,min=1"`
	Species         *string            `json:"species" binding:"omitnil,min=1"`
	Description     *string            `json:"description"`
	Origin          *string            `json:"origin"`
	Characteristics *models.StringList `json:"characteristics"`
}

// Apply merges the supplied fields onto an existing strain.
func (r StrainUpdateRequest) Apply(s *models.Strain) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Species != nil {
		s.Species = *r.Species
	}
	if r.Description != nil {
		s.Description = r.Description
	}
	if r.Origin != nil {
		s.Origin = r.Origin
	}
	if r.Characteristics != nil {
		s.Characteristics = *r.Characteristics
	}
}
