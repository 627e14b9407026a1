// Package diagnostic collects structured errors and warnings about
// descriptor files, for example duplicate field names or type names that
// can never match a JSON value.
//
// Unlike validation errors, which describe a JSON payload, diagnostics
// describe the configuration the importers are built from.
package diagnostic
