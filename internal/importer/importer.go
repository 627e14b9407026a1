package importer

import (
	"errors"
	"fmt"
	"slices"

	"json-importer/internal/rules"
	"json-importer/internal/validation"
)

// ErrContractViolation is wrapped by every ContractError.
var ErrContractViolation = errors.New("import of an object that does not validate")

// Importer validates a JSON object and maps it into a T.
type Importer[T any] interface {
	Validate(obj rules.Object) *validation.Errors
	Import(obj rules.Object) T
}

// ContractError is the panic value of Import when the object does not
// validate or a field cannot be assigned.
type ContractError struct {
	// Target names the structure being imported.
	Target string
	// Errors holds the validation failures, if validation was the cause.
	Errors *validation.Errors
	// Field and Err describe a failed assignment.
	Field string
	Err   error
}

func (e *ContractError) Error() string {
	if e.Errors.HasErrors() {
		return fmt.Sprintf("import %s: %v: %s", e.Target, ErrContractViolation, e.Errors)
	}

	return fmt.Sprintf("import %s: field %q: %v", e.Target, e.Field, e.Err)
}

func (e *ContractError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrContractViolation}
	}

	return []error{ErrContractViolation, e.Err}
}

// RuleBased holds an ordered list of rules. It provides the Validate half of
// an Importer; concrete importers embed it and add Import.
//
// AddRule must not be called concurrently with Validate.
type RuleBased struct {
	rules []rules.Rule
}

// NewRuleBased creates an importer base with an initial, possibly empty,
// rule list.
func NewRuleBased(initial ...rules.Rule) *RuleBased {
	return &RuleBased{rules: slices.Clone(initial)}
}

// AddRule appends a rule and returns the receiver for chaining.
func (b *RuleBased) AddRule(rule rules.Rule) *RuleBased {
	b.rules = append(b.rules, rule)
	return b
}

// Rules returns a copy of the rule list in evaluation order.
func (b *RuleBased) Rules() []rules.Rule {
	return slices.Clone(b.rules)
}

// Validate runs every rule in order against obj and returns a fresh
// collection of the errors they reported.
func (b *RuleBased) Validate(obj rules.Object) *validation.Errors {
	errs := validation.NewErrors()

	for _, rule := range b.rules {
		rule.Verify(obj, errs)
	}

	return errs
}

// mustValidate panics with a ContractError when obj does not validate.
func (b *RuleBased) mustValidate(target string, obj rules.Object) {
	if errs := b.Validate(obj); errs.HasErrors() {
		panic(&ContractError{Target: target, Errors: errs})
	}
}
