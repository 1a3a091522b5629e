// catalog-validator checks services.json for structural and referential
// problems and prints repository statistics when the catalog is clean.
//
// Usage:
//
//	# Validate the catalog found in the current directory or an ancestor
//	catalog-validator
//
//	# Validate explicit files and emit JSON
//	catalog-validator --services data/services.json --schema data/schema.json --format json
//
//	# Export run metrics for the node_exporter textfile collector
//	catalog-validator --metrics-file /var/lib/node_exporter/catalog.prom
//
// The process exits 0 when the catalog is valid and 1 on any validation error
// or when either input file cannot be loaded.
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
