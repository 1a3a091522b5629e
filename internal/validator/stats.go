// internal/validator/stats.go
package validator

import "service-catalog/pkg/catalog"

// GenerateStats counts services by category, pricing model and verification
// status. Missing fields fall into the Unknown bucket.
func GenerateStats(doc catalog.Document) Stats {
	services := doc.Services()

	stats := Stats{
		TotalServices:       len(services),
		TotalCategories:     len(doc.Categories()),
		ServicesPerCategory: map[string]int{},
		PricingModels:       map[string]int{},
		VerificationStatus:  map[string]int{},
	}

	for _, service := range services {
		category := FieldOr(service, []string{catalog.FieldCategory}, Unknown)
		stats.ServicesPerCategory[catalog.FormatValue(category)]++

		model := FieldOr(service, []string{catalog.FieldPricing, catalog.FieldPricingModel}, Unknown)
		stats.PricingModels[catalog.FormatValue(model)]++

		status := FieldOr(service, []string{catalog.FieldMetadata, catalog.FieldVerificationStatus}, Unknown)
		stats.VerificationStatus[catalog.FormatValue(status)]++
	}

	return stats
}

// FieldOr walks path through nested objects and returns the value found, or
// fallback when a segment is absent or a parent is not an object. A present
// null value is returned as nil, not replaced by fallback.
func FieldOr(record catalog.Record, path []string, fallback interface{}) interface{} {
	var current interface{} = map[string]interface{}(record)
	for _, key := range path {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return fallback
		}
		value, exists := obj[key]
		if !exists {
			return fallback
		}
		current = value
	}
	return current
}
