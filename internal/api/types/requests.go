package types

import "github.com/devroster/engine/internal/models"

// DeveloperDTO is the wire shape of a developer record.
type DeveloperDTO struct {
	ID        *int          `json:"id,omitempty" example:"1"`
	FirstName string        `json:"firstName" validate:"required" example:"John"`
	LastName  string        `json:"lastName" validate:"required" example:"Doe"`
	Email     string        `json:"email" validate:"required" example:"john.doe@gmail.com"`
	Specialty string        `json:"specialty,omitempty" example:"Java"`
	Status    models.Status `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE DELETED" example:"ACTIVE"`
}

// ToModel copies the DTO into a Developer. A missing id becomes zero.
func (d DeveloperDTO) ToModel() *models.Developer {
	m := &models.Developer{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Specialty: d.Specialty,
		Status:    d.Status,
	}
	if d.ID != nil {
		m.ID = *d.ID
	}
	return m
}

// FromModel copies a Developer into its DTO. A zero id is left out.
func FromModel(m *models.Developer) DeveloperDTO {
	d := DeveloperDTO{
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Specialty: m.Specialty,
		Status:    m.Status,
	}
	if m.ID != 0 {
		id := m.ID
		d.ID = &id
	}
	return d
}

// FromModels maps a slice, never returning nil.
func FromModels(ms []models.Developer) []DeveloperDTO {
	out := make([]DeveloperDTO, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
