package validator

import (
	"testing"

	"service-catalog/pkg/catalog"

	"github.com/stretchr/testify/assert"
)

func TestGenerateStats(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Stats
	}{
		{
			name: "empty document",
			raw:  `{}`,
			expected: Stats{
				ServicesPerCategory: map[string]int{},
				PricingModels:       map[string]int{},
				VerificationStatus:  map[string]int{},
			},
		},
		{
			name: "empty services",
			raw:  `{"services": [], "categories": [{"id": "a"}, {"id": "b"}]}`,
			expected: Stats{
				TotalServices:       0,
				TotalCategories:     2,
				ServicesPerCategory: map[string]int{},
				PricingModels:       map[string]int{},
				VerificationStatus:  map[string]int{},
			},
		},
		{
			name: "grouped counts with fallbacks",
			raw: `{
				"categories": [{"id": "ai"}, {"id": "db"}],
				"services": [
					{"category": "ai", "pricing": {"model": "freemium"}, "metadata": {"verificationStatus": "verified"}},
					{"category": "ai", "pricing": {"model": "paid"}, "metadata": {"verificationStatus": "pending"}},
					{"category": "db", "pricing": {}, "metadata": {}},
					{"pricing": "not-an-object"}
				]
			}`,
			expected: Stats{
				TotalServices:       4,
				TotalCategories:     2,
				ServicesPerCategory: map[string]int{"ai": 2, "db": 1, "unknown": 1},
				PricingModels:       map[string]int{"freemium": 1, "paid": 1, "unknown": 2},
				VerificationStatus:  map[string]int{"verified": 1, "pending": 1, "unknown": 2},
			},
		},
		{
			name: "null category is counted under None",
			raw:  `{"services": [{"category": null}]}`,
			expected: Stats{
				TotalServices:       1,
				ServicesPerCategory: map[string]int{"None": 1},
				PricingModels:       map[string]int{"unknown": 1},
				VerificationStatus:  map[string]int{"unknown": 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateStats(parseDoc(t, tt.raw)))
		})
	}
}

func TestGenerateStats_TotalMatchesServiceCount(t *testing.T) {
	for _, n := range []int{0, 1, 5, 20} {
		services := make([]map[string]interface{}, n)
		for i := range services {
			services[i] = createService(i, "s", "c")
		}
		stats := GenerateStats(createDocument(services, "c"))
		assert.Equal(t, n, stats.TotalServices)
	}
}

func TestFieldOr(t *testing.T) {
	record := catalog.Record{
		"pricing":  map[string]interface{}{"model": "paid", "tier": nil},
		"metadata": "flat",
	}

	assert.Equal(t, "paid", FieldOr(record, []string{"pricing", "model"}, Unknown))
	assert.Nil(t, FieldOr(record, []string{"pricing", "tier"}, Unknown))
	assert.Equal(t, Unknown, FieldOr(record, []string{"pricing", "currency"}, Unknown))
	assert.Equal(t, Unknown, FieldOr(record, []string{"metadata", "verificationStatus"}, Unknown))
	assert.Equal(t, Unknown, FieldOr(record, []string{"website"}, Unknown))
	assert.Equal(t, map[string]interface{}(record), FieldOr(record, nil, Unknown))
}
