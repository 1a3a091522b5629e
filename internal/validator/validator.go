// Package validator checks a service catalog document and aggregates
// statistics over it. All functions are pure: they read the document and
// never modify it.
package validator

import (
	"encoding/json"
	"fmt"
	"strings"

	"service-catalog/pkg/catalog"
)

// Checker inspects a document and returns its violations in order.
type Checker func(doc catalog.Document) []string

// Checkers lists the checks Run performs, in reporting order.
var Checkers = []struct {
	Name  string
	Check Checker
}{
	{Name: "structure", Check: CheckStructure},
	{Name: "categories", Check: CheckCategories},
	{Name: "urls", Check: CheckURLs},
}

// Run executes every checker and, when none report errors, aggregates
// statistics. The schema document is accepted for parity with the catalog
// layout but is not interpreted.
func Run(doc catalog.Document, _ catalog.Document) *Result {
	result := &Result{Errors: []string{}, ByChecker: make(map[string]int, len(Checkers))}
	for _, c := range Checkers {
		errs := c.Check(doc)
		result.ByChecker[c.Name] = len(errs)
		result.Errors = append(result.Errors, errs...)
	}
	if result.Valid() {
		stats := GenerateStats(doc)
		result.Stats = &stats
	}
	return result
}

// CheckStructure verifies required fields and unique service identifiers.
func CheckStructure(doc catalog.Document) []string {
	errs := []string{}

	for _, field := range requiredDocumentFields {
		if !doc.Has(field) {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", field))
		}
	}

	if !doc.Has(catalog.FieldServices) {
		return errs
	}

	serviceIDs := make(map[string]struct{})
	slugs := make(map[string]struct{})

	for i, service := range doc.Services() {
		// Absent and null identifiers share one key, so two records missing
		// serviceId are reported as duplicates of each other.
		id := service.Get(catalog.FieldServiceID)
		if _, seen := serviceIDs[catalog.ValueKey(id)]; seen {
			errs = append(errs, fmt.Sprintf("Duplicate serviceId: %s", catalog.FormatValue(id)))
		}
		serviceIDs[catalog.ValueKey(id)] = struct{}{}

		slug := service.Get(catalog.FieldSlug)
		if _, seen := slugs[catalog.ValueKey(slug)]; seen {
			errs = append(errs, fmt.Sprintf("Duplicate slug: %s", catalog.FormatValue(slug)))
		}
		slugs[catalog.ValueKey(slug)] = struct{}{}

		for _, field := range requiredServiceFields {
			if !service.Has(field) {
				errs = append(errs, fmt.Sprintf("Service %d missing required field: %s", i, field))
			}
		}
	}

	return errs
}

// CheckCategories verifies every service category names a declared category.
// Services without a category are left to CheckStructure.
func CheckCategories(doc catalog.Document) []string {
	errs := []string{}

	valid := make(map[string]struct{})
	for _, cat := range doc.Categories() {
		if cat.Has(catalog.FieldCategoryID) {
			valid[catalog.ValueKey(cat.Get(catalog.FieldCategoryID))] = struct{}{}
		}
	}

	for _, service := range doc.Services() {
		if !service.Has(catalog.FieldCategory) {
			continue
		}
		category := service.Get(catalog.FieldCategory)
		if _, ok := valid[catalog.ValueKey(category)]; !ok {
			errs = append(errs, fmt.Sprintf("Service %s has invalid category: %s",
				catalog.FormatValue(service.Get(catalog.FieldServiceID)), catalog.FormatValue(category)))
		}
	}

	return errs
}

// CheckURLs verifies that a non-empty website uses an http or https scheme.
func CheckURLs(doc catalog.Document) []string {
	errs := []string{}

	for _, service := range doc.Services() {
		website := service.Get(catalog.FieldWebsite)
		if isEmpty(website) || hasAllowedPrefix(website) {
			continue
		}
		errs = append(errs, fmt.Sprintf("Service %s has invalid website URL: %s",
			catalog.FormatValue(service.Get(catalog.FieldServiceID)), catalog.FormatValue(website)))
	}

	return errs
}

func hasAllowedPrefix(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	for _, prefix := range allowedURLPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// isEmpty treats null, false, zero, "" and empty containers as no value.
func isEmpty(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case json.Number:
		f, err := val.Float64()
		return err == nil && f == 0
	case []interface{}:
		return len(val) == 0
	case map[string]interface{}:
		return len(val) == 0
	}
	return false
}
