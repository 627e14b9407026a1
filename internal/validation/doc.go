// Package validation holds the records produced when a JSON object fails a
// rule, and the ordered collection they are gathered into.
//
// Failures are data: rules append Error values to an Errors collection and
// the caller decides what to do with the complete report.
//
//	errs := validation.NewErrors()
//	errs.Add(validation.NewFieldMissing("name"))
//
//	if errs.HasErrors() {
//	    for _, e := range errs.All() {
//	        fmt.Println(e.Field, e.Problem)
//	    }
//	}
//
// An Errors collection serializes to a JSON array of
// {field, problem, kind} records; type mismatches additionally carry
// expectedType and foundType.
package validation
