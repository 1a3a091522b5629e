// internal/validator/models.go
package validator

import "service-catalog/pkg/catalog"

// Unknown is the statistics bucket for services missing the grouped field.
const Unknown = "unknown"

var (
	requiredDocumentFields = []string{
		catalog.FieldVersion,
		catalog.FieldLastUpdated,
		catalog.FieldServices,
		catalog.FieldCategories,
	}

	requiredServiceFields = []string{
		catalog.FieldServiceID,
		catalog.FieldSlug,
		catalog.FieldName,
		catalog.FieldProvider,
		catalog.FieldCategory,
		catalog.FieldMetadata,
	}

	allowedURLPrefixes = []string{"http://", "https://"}
)

// Stats is the aggregate view of a valid catalog.
type Stats struct {
	TotalServices       int            `json:"total_services"`
	TotalCategories     int            `json:"total_categories"`
	ServicesPerCategory map[string]int `json:"services_per_category"`
	PricingModels       map[string]int `json:"pricing_models"`
	VerificationStatus  map[string]int `json:"verification_status"`
}

// Result is the outcome of a full validation run. Stats is set only when
// Errors is empty.
type Result struct {
	Errors    []string       `json:"errors"`
	ByChecker map[string]int `json:"-"`
	Stats     *Stats         `json:"stats,omitempty"`
}

// Valid reports whether the run found no errors.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}
