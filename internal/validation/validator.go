package validation

import "strings"

// FieldResult is the outcome of validating a single field.
type FieldResult struct {
	Value   string `json:"value"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Result maps field names to their validation outcome.
type Result map[string]FieldResult

// Ok reports whether every field in the result is valid.
func (r Result) Ok() bool {
	for _, f := range r {
		if !f.Valid {
			return false
		}
	}
	return true
}

// Ruleset maps field names to the rules that must all pass for the field.
type Ruleset struct {
	fields []string
	rules  map[string][]Rule
}

// NewRuleset returns an empty Ruleset.
func NewRuleset() *Ruleset {
	return &Ruleset{rules: make(map[string][]Rule)}
}

// Add appends rules for the named field. Calling Add twice for the same
// field appends to the existing rules.
func (rs *Ruleset) Add(field string, rules ...Rule) *Ruleset {
	if _, ok := rs.rules[field]; !ok {
		rs.fields = append(rs.fields, field)
	}
	rs.rules[field] = append(rs.rules[field], rules...)
	return rs
}

// Validator evaluates a Ruleset against a raw input map. It is stateless;
// Validate is a pure function of (ruleset, input).
type Validator struct {
	ruleset *Ruleset
}

// NewValidator returns a Validator for the given ruleset.
func NewValidator(ruleset *Ruleset) *Validator {
	return &Validator{ruleset: ruleset}
}

// Validate checks every configured field against its rules and returns the
// per-field results plus the aggregate outcome. Input keys without configured
// rules are ignored. A field missing from the input is validated with the
// empty string, so a field carrying only Optional rules is valid when absent.
// Rules for a field run in order and stop at the first failure.
func (v *Validator) Validate(input map[string]string) (Result, bool) {
	result := make(Result, len(v.ruleset.fields))
	ok := true
	for _, field := range v.ruleset.fields {
		value := strings.TrimSpace(input[field])
		fr := FieldResult{Value: value, Valid: true}
		for _, rule := range v.ruleset.rules[field] {
			if err := rule.Check(value); err != nil {
				fr.Valid = false
				fr.Message = err.Error()
				ok = false
				break
			}
		}
		result[field] = fr
	}
	return result, ok
}
