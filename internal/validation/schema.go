package validation

import (
	"math"
	"sort"
)

// Kind identifies how a declared field is validated.
type Kind int

// Field kinds
const (
	// Text is a free-text field, sanitized then length-checked.
	Text Kind = iota
	// StorageRef is an opaque reference to an externally stored file.
	StorageRef
	// Number is an integer field with inclusive bounds.
	Number
)

// Rule declares the constraints for a single field.
type Rule struct {
	Kind     Kind
	MaxLen   int
	Min, Max int
	Optional bool
}

// Schema maps field names to their rules. One schema is declared per
// content type; all mutations for that type validate against it.
type Schema map[string]Rule

// Clean validates a full field set for record creation. Every declared
// non-optional field must be present; unknown fields are rejected. Text
// fields are sanitized before their length checks. Numbers are validated
// first, then storage references, then text, so a bad number fails before
// any text sanitization work. The input map is never modified; on success
// the returned map holds the cleaned values and nothing else happens until
// the caller persists them.
func (s Schema) Clean(fields map[string]interface{}) (map[string]interface{}, error) {
	for name := range fields {
		if _, ok := s[name]; !ok {
			return nil, errField(name, "unknown field")
		}
	}
	for _, name := range s.sortedNames() {
		if _, present := fields[name]; !present && !s[name].Optional {
			return nil, errField(name, "field is required")
		}
	}
	return s.clean(fields)
}

// CleanPartial validates only the fields present, for partial updates. Any
// single failure rejects the whole set; no field is applied.
func (s Schema) CleanPartial(fields map[string]interface{}) (map[string]interface{}, error) {
	for name := range fields {
		if _, ok := s[name]; !ok {
			return nil, errField(name, "unknown field")
		}
	}
	return s.clean(fields)
}

func (s Schema) clean(fields map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(fields))

	for _, kind := range []Kind{Number, StorageRef, Text} {
		for _, name := range s.sortedNames() {
			rule := s[name]
			if rule.Kind != kind {
				continue
			}
			raw, present := fields[name]
			if !present {
				continue
			}
			value, err := rule.validate(name, raw)
			if err != nil {
				return nil, err
			}
			out[name] = value
		}
	}

	return out, nil
}

func (r Rule) validate(name string, raw interface{}) (interface{}, error) {
	switch r.Kind {
	case Number:
		return r.validateNumber(name, raw)
	case StorageRef:
		str, ok := raw.(string)
		if !ok {
			return nil, errField(name, "expected a string")
		}
		if err := ValidateStorageRef(str); err != nil {
			return nil, errField(name, "%v", err)
		}
		return str, nil
	default:
		str, ok := raw.(string)
		if !ok {
			return nil, errField(name, "expected a string")
		}
		clean := SanitizeText(str)
		if clean == "" {
			return nil, errField(name, "cannot be empty")
		}
		if r.MaxLen > 0 && len(clean) > r.MaxLen {
			return nil, errField(name, "exceeds maximum length of %d characters", r.MaxLen)
		}
		return clean, nil
	}
}

// validateNumber accepts int or float64 (JSON numbers decode as float64)
// and requires an integral value within the inclusive [Min, Max] bounds.
func (r Rule) validateNumber(name string, raw interface{}) (interface{}, error) {
	var value float64
	switch v := raw.(type) {
	case int:
		value = float64(v)
	case int64:
		value = float64(v)
	case float64:
		value = v
	default:
		return nil, errField(name, "expected a number")
	}

	if value != math.Trunc(value) {
		return nil, errField(name, "must be an integer")
	}
	n := int(value)
	if n < r.Min || n > r.Max {
		return nil, errField(name, "must be between %d and %d", r.Min, r.Max)
	}
	return n, nil
}

func (s Schema) sortedNames() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
