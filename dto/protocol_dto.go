package dto

import "github.com/mycolab-catalog/models"

// ProtocolCreateRequest is the payload for creating a protocol.
type ProtocolCreateRequest struct {
	Name        string            `json:"name" binding:"required"`
	Type        string            `json:"type" binding:"required"`
	Steps       models.StringList `json:"steps"`
	Duration    *float64          `json:"duration"`
	Temperature *float64          `json:"temperature"`
	Equipment   models.StringList `json:"equipment"`
	Materials   models.StringList `json:"materials"`
	Description *string           `json:"description"`
}

// ToModel builds the protocol record to persist.
func (r ProtocolCreateRequest) ToModel() models.Protocol {
	return models.Protocol{
		Name:        r.Name,
		Type:        r.Type,
		Steps:       defaultList(r.Steps),
		Duration:    r.Duration,
		Temperature: r.Temperature,
		Equipment:   defaultList(r.Equipment),
		Materials:   defaultList(r.Materials),
		Description: r.Description,
	}
}

// ProtocolUpdateRequest is the partial payload for updating a protocol.
type ProtocolUpdateRequest struct {
	Name        *string            `json:"name" binding:"omitnil,min=1"`
	Type        *string            `json:"type" binding:"omitnil,min=1"`
	Steps       *models.StringList `json:"steps"`
	Duration    *float64           `json:"duration"`
	Temperature *float64           `json:"temperature"`
	Equipment   *models.StringList `json:"equipment"`
	Materials   *models.StringList `json:"materials"`
	Description *string            `json:"description"`
}

// Apply merges the supplied fields onto an existing protocol.
func (r ProtocolUpdateRequest) Apply(p *models.Protocol) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Type != nil {
		p.Type = *r.Type
	}
	if r.Steps != nil {
		p.Steps = *r.Steps
	}
	if r.Duration != nil {
		p.Duration = r.Duration
	}
	if r.Temperature != nil {
		p.Temperature = r.Temperature
	}
	if r.Equipment != nil {
		p.Equipment = *r.Equipment
	}
	if r.Materials != nil {
		p.Materials = *r.Materials
	}
	if r.Description != nil {
		p.Description = r.Description
	}
}
