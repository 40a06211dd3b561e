package profile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownField is returned when a field name is outside the draft schema.
	ErrUnknownField = errors.New("unknown profile field")

	// ErrUnknownInterest is returned when an interest tag is not in the catalog.
	ErrUnknownInterest = errors.New("unknown interest")
)

// Field names accepted by SetField.
const (
	FieldName               = "name"
	FieldAge                = "age"
	FieldGender             = "gender"
	FieldLookingFor         = "lookingFor"
	FieldBio                = "bio"
	FieldInterests          = "interests"
	FieldImportanceOfHumor  = "importanceOfHumor"
	FieldImportanceOfLooks  = "importanceOfLooks"
	FieldImportanceOfValues = "importanceOfValues"
)

// InvalidValueError reports a value that does not fit the field it was set on.
type InvalidValueError struct {
	Field string
	Value any
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %v for %s: %v", e.Value, e.Field, e.Err)
}

func (e *InvalidValueError) Unwrap() error { return e.Err }

// SetField merges value into the draft at key name. The draft is left
// unchanged when the name is unknown or the value is rejected.
func (d *Draft) SetField(name string, value any) error {
	switch name {
	case FieldName:
		s, err := asString(name, value)
		if err != nil {
			return err
		}
		d.Name = s
	case FieldBio:
		s, err := asString(name, value)
		if err != nil {
			return err
		}
		d.Bio = s
	case FieldAge:
		n, err := asInt(name, value)
		if err != nil {
			return err
		}
		if n < 0 {
			return &InvalidValueError{Field: name, Value: value, Err: errors.New("must not be negative")}
		}
		d.Age = n
	case FieldGender:
		s, err := asString(name, value)
		if err != nil {
			return err
		}
		g := Gender(s)
		if g != GenderUnset && !g.Valid() {
			return &InvalidValueError{Field: name, Value: value, Err: errors.New("not a known gender")}
		}
		d.Gender = g
	case FieldLookingFor:
		s, err := asString(name, value)
		if err != nil {
			return err
		}
		l := LookingFor(s)
		if l != LookingForUnset && !l.Valid() {
			return &InvalidValueError{Field: name, Value: value, Err: errors.New("not a known preference")}
		}
		d.LookingFor = l
	case FieldImportanceOfHumor, FieldImportanceOfLooks, FieldImportanceOfValues:
		n, err := asImportance(name, value)
		if err != nil {
			return err
		}
		switch name {
		case FieldImportanceOfHumor:
			d.ImportanceOfHumor = n
		case FieldImportanceOfLooks:
			d.ImportanceOfLooks = n
		default:
			d.ImportanceOfValues = n
		}
	case FieldInterests:
		return &InvalidValueError{Field: name, Value: value, Err: errors.New("use ToggleInterest")}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Field returns the current value stored at key name.
func (d Draft) Field(name string) (any, error) {
	switch name {
	case FieldName:
		return d.Name, nil
	case FieldAge:
		return d.Age, nil
	case FieldGender:
		return d.Gender, nil
	case FieldLookingFor:
		return d.LookingFor, nil
	case FieldBio:
		return d.Bio, nil
	case FieldInterests:
		return append([]string(nil), d.Interests...), nil
	case FieldImportanceOfHumor:
		return d.ImportanceOfHumor, nil
	case FieldImportanceOfLooks:
		return d.ImportanceOfLooks, nil
	case FieldImportanceOfValues:
		return d.ImportanceOfValues, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func asString(field string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case Gender:
		return string(v), nil
	case LookingFor:
		return string(v), nil
	}
	return "", &InvalidValueError{Field: field, Value: value, Err: errors.New("expected text")}
}

func asInt(field string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, &InvalidValueError{Field: field, Value: value, Err: errors.New("expected a whole number")}
		}
		return int(v), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, &InvalidValueError{Field: field, Value: value, Err: err}
		}
		return n, nil
	}
	return 0, &InvalidValueError{Field: field, Value: value, Err: errors.New("expected a number")}
}

func asImportance(field string, value any) (int, error) {
	n, err := asInt(field, value)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 100 {
		return 0, &InvalidValueError{Field: field, Value: value, Err: errors.New("must be between 0 and 100")}
	}
	return n, nil
}
