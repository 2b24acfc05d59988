// Package dto defines the request payloads accepted by the catalog API.
//
// Create requests carry binding tags for the required fields and produce a
// full record via ToModel. Update requests are all-optional, though required
// scalars must still be non-empty when supplied; Apply merges only the
// supplied fields onto an existing record.
package dto

import "github.com/mycolab-catalog/models"

// defaultList substitutes the empty list for an omitted list field.
func defaultList(l models.StringList) models.StringList {
	if l == nil {
		return models.StringList{}
	}
	return l
}
