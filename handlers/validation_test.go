package handlers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidationDetailsNamesMissingFields(t *testing.T) {
	v := validator.New()
	err := v.Struct(struct {
		Name    string `validate:"required"`
		Species string `validate:"required"`
	}{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	details := validationDetails(err)
	if !strings.Contains(details, "Name is required") {
		t.Errorf("details = %q, want mention of Name", details)
	}
	if !strings.Contains(details, "Species is required") {
		t.Errorf("details = %q, want mention of Species", details)
	}
}

func TestValidationDetailsTypeMismatch(t *testing.T) {
	var payload struct {
		Temperature *float64 `json:"temperature"`
	}
	err := json.Unmarshal([]byte(`{"temperature":"hot"}`), &payload)
	if err == nil {
		t.Fatal("expected unmarshal error")
	}

	details := validationDetails(err)
	if !strings.Contains(details, "temperature") || !strings.Contains(details, "number") {
		t.Errorf("details = %q, want temperature/number mention", details)
	}
}

func TestValidationDetailsFallsBackToErrorText(t *testing.T) {
	err := json.Unmarshal([]byte(`{"bad`), &struct{}{})
	if err == nil {
		t.Fatal("expected unmarshal error")
	}
	if validationDetails(err) == "" {
		t.Error("details empty for malformed JSON")
	}
}
