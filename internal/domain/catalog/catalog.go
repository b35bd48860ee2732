// Package catalog merges service sheets into the effective catalog a quote
// is built from.
package catalog

import "quote_desk/internal/domain/entities"

// Merge applies a customer's override services on top of the default
// catalog.
//
// With no overrides the default slice is returned as is. Otherwise the result
// starts as a copy of defaults; each override replaces the first entry with the
// same (Name, Category), keeping that entry's position, or is appended when
// nothing matches. Matching is exact and case-sensitive.
func Merge(defaults, overrides []entities.Service) []entities.Service {
	if overrides == nil {
		return defaults
	}

	merged := make([]entities.Service, len(defaults), len(defaults)+len(overrides))
	copy(merged, defaults)

	for _, custom := range overrides {
		if i := indexOf(merged, custom); i >= 0 {
			merged[i] = custom
			continue
		}
		merged = append(merged, custom)
	}
	return merged
}

// Resolve picks the catalog visible to a customer given the default sheet and
// the customer's own sheet, if any.
func Resolve(defaultSheet, customerSheet *entities.ServiceSheet) []entities.Service {
	var defaults []entities.Service
	if defaultSheet != nil {
		defaults = defaultSheet.Services
	}
	if customerSheet == nil {
		return defaults
	}
	overrides := customerSheet.Services
	if overrides == nil {
		overrides = []entities.Service{}
	}
	return Merge(defaults, overrides)
}

// Find returns the service with the given id from a resolved catalog.
func Find(services []entities.Service, id string) (entities.Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return entities.Service{}, false
}

func indexOf(services []entities.Service, target entities.Service) int {
	for i, s := range services {
		if s.Name == target.Name && s.Category == target.Category {
			return i
		}
	}
	return -1
}
