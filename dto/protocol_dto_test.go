package dto

import (
	"reflect"
	"testing"

	"github.com/mycolab-catalog/models"
)

func TestProtocolCreateDefaultsListsToEmpty(t *testing.T) {
	m := ProtocolCreateRequest{Name: "Inoculação", Type: "inoculação"}.ToModel()

	for field, list := range map[string]models.StringList{
		"steps":     m.Steps,
		"equipment": m.Equipment,
		"materials": m.Materials,
	} {
		if list == nil || len(list) != 0 {
			t.Errorf("%s = %v, want empty list", field, list)
		}
	}
}

func TestProtocolUpdateAppliesOnlySuppliedFields(t *testing.T) {
	desc := "atualizado"
	p := models.Protocol{
		Name:      "Inoculação",
		Type:      "inoculação",
		Steps:     models.StringList{"esterilizar", "inocular"},
		Equipment: models.StringList{"autoclave"},
		Materials: models.StringList{"substrato"},
	}

	ProtocolUpdateRequest{Description: &desc}.Apply(&p)

	if p.Description == nil || *p.Description != "atualizado" {
		t.Errorf("Description = %v, want atualizado", p.Description)
	}
	if p.Name != "Inoculação" || p.Type != "inoculação" {
		t.Error("Apply changed fields that were not supplied")
	}
	if !reflect.DeepEqual(p.Steps, models.StringList{"esterilizar", "inocular"}) {
		t.Errorf("Steps = %v, want unchanged", p.Steps)
	}
	if !reflect.DeepEqual(p.Equipment, models.StringList{"autoclave"}) {
		t.Errorf("Equipment = %v, want unchanged", p.Equipment)
	}
	if !reflect.DeepEqual(p.Materials, models.StringList{"substrato"}) {
		t.Errorf("Materials = %v, want unchanged", p.Materials)
	}
}

func TestStrainUpdateReplacesListWhenSupplied(t *testing.T) {
	s := models.Strain{Name: "Cepa A", Species: "sp", Characteristics: models.StringList{"antiga"}}
	chars := models.StringList{"nova", "outra"}

	StrainUpdateRequest{Characteristics: &chars}.Apply(&s)

	if !reflect.DeepEqual(s.Characteristics, chars) {
		t.Errorf("Characteristics = %v, want %v", s.Characteristics, chars)
	}
}
