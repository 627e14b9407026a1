// json-importer validates JSON documents against structures declared in a
// YAML descriptor file and prints either the validation report or the
// imported object.
//
// Usage:
//
//	# Validate and import a payload
//	json-importer check --descriptor structures.yaml --structure User payload.json
//
//	# Read the payload from stdin and reject undeclared fields
//	cat payload.json | json-importer check -d structures.yaml -s User --exact -
//
//	# Inspect a descriptor file
//	json-importer describe --descriptor structures.yaml
package main

func main() {
	Execute()
}
