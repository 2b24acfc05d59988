package dto

import "github.com/mycolab-catalog/models"

// GrowParameterCreateRequest is the payload for creating a grow parameter.
type GrowParameterCreateRequest struct {
	Name         string   `json:"name" binding:"required"`
	Type         string   `json:"type" binding:"required"`
	Unit         string   `json:"unit" binding:"required"`
	MinValue     *float64 `json:"minValue"`
	MaxValue     *float64 `json:"maxValue"`
	OptimalValue *float64 `json:"optimalValue"`
	Description  *string  `json:"description"`
}

// ToModel builds the grow parameter record to persist.
func (r GrowParameterCreateRequest) ToModel() models.GrowParameter {
	return models.GrowParameter{
		Name:         r.Name,
		Type:         r.Type,
		Unit:         r.Unit,
		MinValue:     r.MinValue,
		MaxValue:     r.MaxValue,
		OptimalValue: r.OptimalValue,
		Description:  r.Description,
	}
}

// GrowParameterUpdateRequest is the partial payload for updating a grow parameter.
type GrowParameterUpdateRequest struct {
	Name         *string  `json:"name" binding:"omitnil,min=1"`
	Type         *string  `json:"type" binding:"omitnil,min=1"`
	Unit         *string  `json:"unit" binding:"omitnil,min=1"`
	MinValue     *float64 `json:"minValue"`
	MaxValue     *float64 `json:"maxValue"`
	OptimalValue *float64 `json:"optimalValue"`
	Description  *string  `json:"description"`
}

// Apply merges the supplied fields onto an existing grow parameter.
func (r GrowParameterUpdateRequest) Apply(gp *models.GrowParameter) {
	if r.Name != nil {
		gp.Name = *r.Name
	}
	if r.Type != nil {
		gp.Type = *r.Type
	}
	if r.Unit != nil {
		gp.Unit = *r.Unit
	}
	if r.MinValue != nil {
		gp.MinValue = r.MinValue
	}
	if r.MaxValue != nil {
		gp.MaxValue = r.MaxValue
	}
	if r.OptimalValue != nil {
		gp.OptimalValue = r.OptimalValue
	}
	if r.Description != nil {
		gp.Description = r.Description
	}
}
