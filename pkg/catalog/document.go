// pkg/catalog/document.go
package catalog

// Top-level document fields.
const (
	FieldVersion     = "version"
	FieldLastUpdated = "lastUpdated"
	FieldServices    = "services"
	FieldCategories  = "categories"
)

// Service record fields.
const (
	FieldServiceID          = "serviceId"
	FieldSlug               = "slug"
	FieldName               = "name"
	FieldProvider           = "provider"
	FieldCategory           = "category"
	FieldMetadata           = "metadata"
	FieldWebsite            = "website"
	FieldPricing            = "pricing"
	FieldPricingModel       = "model"
	FieldVerificationStatus = "verificationStatus"
	FieldCategoryID         = "id"
)

// Document is a parsed services.json. Numbers are kept as json.Number.
type Document map[string]interface{}

// Record is a single service or category entry.
type Record map[string]interface{}

// Has reports whether the document carries field, even if its value is null.
func (d Document) Has(field string) bool {
	_, ok := d[field]
	return ok
}

// Services returns the service records in order. A missing or non-array
// services value yields nil; non-object entries become empty records.
func (d Document) Services() []Record {
	return records(d[FieldServices])
}

// Categories returns the category records in order, with the same shape
// tolerance as Services.
func (d Document) Categories() []Record {
	return records(d[FieldCategories])
}

// Has reports whether the record carries field, even if its value is null.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Get returns the value of field, or nil when absent.
func (r Record) Get(field string) interface{} {
	return r[field]
}

func records(v interface{}) []Record {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]Record, len(items))
	for i, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			out[i] = Record(m)
		} else {
			out[i] = Record{}
		}
	}
	return out
}
