package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validationDetails renders a bind error as field-level detail text, naming
// each offending field.
func validationDetails(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				parts = append(parts, fe.Field()+" is required")
			case "min":
				parts = append(parts, fe.Field()+" must not be empty")
			default:
				parts = append(parts, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
			}
		}
		return strings.Join(parts, "; ")
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return fmt.Sprintf("%s must be a %s", ute.Field, friendlyType(ute.Type.String()))
	}

	return err.Error()
}

func friendlyType(t string) string {
	switch {
	case strings.HasPrefix(t, "float"), strings.HasPrefix(t, "int"):
		return "number"
	case strings.Contains(t, "StringList"):
		return "list of strings"
	default:
		return t
	}
}
