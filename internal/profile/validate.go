package profile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Problem describes a single field that is not ready for submission.
type Problem struct {
	Field   string
	Message string
}

// RequiredFields are the fields that must be filled before a profile is complete.
var RequiredFields = []string{FieldName, FieldAge, FieldGender, FieldLookingFor}

// Problems checks the given fields and returns one Problem per field that
// is missing or out of range. Fields without rules never produce a problem.
func (d Draft) Problems(fields ...string) []Problem {
	var out []Problem
	for _, f := range fields {
		if msg := d.problem(f); msg != "" {
			out = append(out, Problem{Field: f, Message: msg})
		}
	}
	return out
}

func (d Draft) problem(field string) string {
	switch field {
	case FieldName:
		if d.Name == "" {
			return "Tell us your name"
		}
	case FieldAge:
		if d.Age <= 0 {
			return "Enter your age"
		}
	case FieldGender:
		if !d.Gender.Valid() {
			return "Pick a gender"
		}
	case FieldLookingFor:
		if !d.LookingFor.Valid() {
			return "Pick who you are looking for"
		}
	case FieldImportanceOfHumor:
		return rangeProblem(d.ImportanceOfHumor)
	case FieldImportanceOfLooks:
		return rangeProblem(d.ImportanceOfLooks)
	case FieldImportanceOfValues:
		return rangeProblem(d.ImportanceOfValues)
	}
	return ""
}

func rangeProblem(n int) string {
	if n < 0 || n > 100 {
		return "Must be between 0 and 100"
	}
	return ""
}

// Check verifies that every stored value is inside its domain. Unset
// values are allowed; use Problems to check for completeness.
func (d Draft) Check() error {
	if d.Age < 0 {
		return &InvalidValueError{Field: FieldAge, Value: d.Age, Err: errors.New("must not be negative")}
	}
	if d.Gender != GenderUnset && !d.Gender.Valid() {
		return &InvalidValueError{Field: FieldGender, Value: d.Gender, Err: errors.New("not a known gender")}
	}
	if d.LookingFor != LookingForUnset && !d.LookingFor.Valid() {
		return &InvalidValueError{Field: FieldLookingFor, Value: d.LookingFor, Err: errors.New("not a known preference")}
	}
	for _, f := range []string{FieldImportanceOfHumor, FieldImportanceOfLooks, FieldImportanceOfValues} {
		if msg := d.problem(f); msg != "" {
			v, _ := d.Field(f)
			return &InvalidValueError{Field: f, Value: v, Err: errors.New(msg)}
		}
	}
	seen := make(map[string]bool, len(d.Interests))
	for _, tag := range d.Interests {
		if !InCatalog(tag) {
			return fmt.Errorf("%w: %q", ErrUnknownInterest, tag)
		}
		if seen[tag] {
			return &InvalidValueError{Field: FieldInterests, Value: tag, Err: errors.New("listed twice")}
		}
		seen[tag] = true
	}
	return nil
}

// LoadDraft reads a YAML prefill file. Keys that are absent keep the
// values of NewDraft.
func LoadDraft(path string) (Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Draft{}, fmt.Errorf("read profile: %w", err)
	}
	return ParseDraft(data)
}

// ParseDraft decodes a YAML draft and checks its values.
func ParseDraft(data []byte) (Draft, error) {
	d := NewDraft()
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Draft{}, fmt.Errorf("decode profile: %w", err)
	}
	if d.Interests == nil {
		d.Interests = []string{}
	}
	if err := d.Check(); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// EncodeDraft writes d in the layout ParseDraft reads.
func EncodeDraft(d Draft) ([]byte, error) {
	return yaml.Marshal(d)
}
