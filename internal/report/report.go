// Package report renders validation results for the console.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"service-catalog/internal/validator"
)

// Text writes the human-readable report: the error listing on failure, or
// the confirmation line and statistics on success.
func Text(w io.Writer, result *validator.Result) error {
	pw := &printer{w: w}

	if !result.Valid() {
		pw.println("Validation Errors:")
		for _, e := range result.Errors {
			pw.printf("  ❌ %s\n", e)
		}
		pw.printf("\nTotal errors: %d\n", len(result.Errors))
		return pw.err
	}

	pw.println("✅ Validation passed!")
	if result.Stats == nil {
		return pw.err
	}

	stats := result.Stats
	pw.println("\nRepository Statistics:")
	pw.printf("  Total services: %d\n", stats.TotalServices)
	pw.printf("  Total categories: %d\n", stats.TotalCategories)

	pw.section("Services per category", stats.ServicesPerCategory)
	pw.section("Pricing models", stats.PricingModels)
	pw.section("Verification status", stats.VerificationStatus)

	return pw.err
}

// LoadError writes the fatal message for input files that could not be loaded.
func LoadError(w io.Writer, err error) error {
	_, werr := fmt.Fprintf(w, "Error loading files: %v\n", err)
	return werr
}

type jsonReport struct {
	Valid  bool             `json:"valid"`
	Errors []string         `json:"errors"`
	Stats  *validator.Stats `json:"stats,omitempty"`
}

// JSON writes the result as a single indented JSON object.
func JSON(w io.Writer, result *validator.Result) error {
	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(jsonReport{Valid: result.Valid(), Errors: errs, Stats: result.Stats})
}

// Write dispatches on format ("text" or "json").
func Write(w io.Writer, format string, result *validator.Result) error {
	switch format {
	case "json":
		return JSON(w, result)
	case "text", "":
		return Text(w, result)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// SortedKeys returns the keys of counts in ascending order.
func SortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// printer keeps the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}

func (p *printer) section(title string, counts map[string]int) {
	p.printf("\n  %s:\n", title)
	for _, k := range SortedKeys(counts) {
		p.printf("    %s: %d\n", k, counts[k])
	}
}
