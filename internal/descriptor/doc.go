// Package descriptor loads structure descriptions from YAML files, so that
// JSON payloads can be validated and imported without a compiled Go type.
//
// # Schema Overview
//
//	version: "1"
//	structures:
//	  - name: User
//	    exact: true          # reject fields that are not declared
//	    fields:
//	      - name: userId
//	        type: int        # "int" is an alias of "integer"
//	      - name: name
//	        type: string
//	        nullable: true   # an explicit null is accepted
//	      - name: extra      # no type: any value, null included
//
// Recognised type names are integer (or int), float, string, bool, array and
// object. Any other name is kept verbatim and reported as a warning by
// Validate, since no JSON value can ever match it.
package descriptor
