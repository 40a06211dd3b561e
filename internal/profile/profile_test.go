package profile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()
	if d.ImportanceOfHumor != 50 || d.ImportanceOfLooks != 50 || d.ImportanceOfValues != 50 {
		t.Errorf("expected importance defaults of 50, got %d/%d/%d",
			d.ImportanceOfHumor, d.ImportanceOfLooks, d.ImportanceOfValues)
	}
	if d.Gender != GenderUnset || d.LookingFor != LookingForUnset {
		t.Error("expected gender and lookingFor unset")
	}
	if d.Interests == nil || len(d.Interests) != 0 {
		t.Errorf("expected empty non-nil interests, got %v", d.Interests)
	}
}

func TestSetField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   any
		check   func(Draft) bool
		wantErr error
	}{
		{"name", FieldName, "Ana", func(d Draft) bool { return d.Name == "Ana" }, nil},
		{"bio", FieldBio, "hi", func(d Draft) bool { return d.Bio == "hi" }, nil},
		{"age int", FieldAge, 27, func(d Draft) bool { return d.Age == 27 }, nil},
		{"age string", FieldAge, " 31 ", func(d Draft) bool { return d.Age == 31 }, nil},
		{"age empty string", FieldAge, "", func(d Draft) bool { return d.Age == 0 }, nil},
		{"gender", FieldGender, "female", func(d Draft) bool { return d.Gender == GenderFemale }, nil},
		{"gender typed", FieldGender, GenderOther, func(d Draft) bool { return d.Gender == GenderOther }, nil},
		{"looking for", FieldLookingFor, "both", func(d Draft) bool { return d.LookingFor == LookingForBoth }, nil},
		{"humor", FieldImportanceOfHumor, 80, func(d Draft) bool { return d.ImportanceOfHumor == 80 }, nil},
		{"looks", FieldImportanceOfLooks, 0, func(d Draft) bool { return d.ImportanceOfLooks == 0 }, nil},
		{"values", FieldImportanceOfValues, 100, func(d Draft) bool { return d.ImportanceOfValues == 100 }, nil},
		{"unknown", "height", 180, nil, ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft()
			err := d.SetField(tt.field, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.check(d), "field %s not applied", tt.field)
		})
	}
}

func TestSetFieldRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{"negative age", FieldAge, -1},
		{"age not a number", FieldAge, "twenty"},
		{"age fractional", FieldAge, 20.5},
		{"gender unknown", FieldGender, "robot"},
		{"looking for unknown", FieldLookingFor, "cats"},
		{"importance too high", FieldImportanceOfHumor, 101},
		{"importance negative", FieldImportanceOfValues, -5},
		{"name not text", FieldName, 42},
		{"interests via set field", FieldInterests, []string{"music"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft()
			before := d.Clone()
			err := d.SetField(tt.field, tt.value)
			var invErr *InvalidValueError
			require.True(t, errors.As(err, &invErr), "expected InvalidValueError, got %v", err)
			assert.Equal(t, tt.field, invErr.Field)
			assert.Equal(t, before, d, "draft must be unchanged after a rejected value")
		})
	}
}

func TestToggleInterestIsItsOwnInverse(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.ToggleInterest(InterestCoffee))
	require.NoError(t, d.ToggleInterest(InterestMusic))
	start := d.Clone()

	for _, tag := range Catalog() {
		d := start.Clone()
		before := d.Clone()
		require.NoError(t, d.ToggleInterest(tag))
		require.NoError(t, d.ToggleInterest(tag))
		if before.HasInterest(tag) {
			// Re-adding a removed tag appends it, so only membership is restored.
			assert.ElementsMatch(t, before.Interests, d.Interests, "toggle twice of %q", tag)
		} else {
			assert.Equal(t, before.Interests, d.Interests, "toggle twice of %q", tag)
		}
	}
}

func TestToggleInterestTwiceMovesPresentTagToEnd(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.ToggleInterest(InterestCoffee))
	require.NoError(t, d.ToggleInterest(InterestMusic))

	require.NoError(t, d.ToggleInterest(InterestCoffee))
	require.NoError(t, d.ToggleInterest(InterestCoffee))
	assert.Equal(t, []string{InterestMusic, InterestCoffee}, d.Interests)
}

func TestToggleInterestPreservesInsertionOrder(t *testing.T) {
	d := NewDraft()
	for _, tag := range []string{InterestReading, InterestMusic, InterestGaming} {
		require.NoError(t, d.ToggleInterest(tag))
	}
	require.NoError(t, d.ToggleInterest(InterestMusic))
	assert.Equal(t, []string{InterestReading, InterestGaming}, d.Interests)

	require.NoError(t, d.ToggleInterest(InterestMusic))
	assert.Equal(t, []string{InterestReading, InterestGaming, InterestMusic}, d.Interests)
}

func TestToggleInterestUnknown(t *testing.T) {
	d := NewDraft()
	err := d.ToggleInterest("skydiving")
	require.ErrorIs(t, err, ErrUnknownInterest)
	assert.Empty(t, d.Interests)
}

func TestToggleDoesNotAliasClones(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.ToggleInterest(InterestMusic))
	c := d.Clone()
	require.NoError(t, d.ToggleInterest(InterestMovies))
	assert.Equal(t, []string{InterestMusic}, c.Interests)
}

func TestProblems(t *testing.T) {
	d := NewDraft()
	problems := d.Problems(RequiredFields...)
	if len(problems) != 4 {
		t.Fatalf("expected 4 problems for empty draft, got %d", len(problems))
	}

	require.NoError(t, d.SetField(FieldName, "Ana"))
	require.NoError(t, d.SetField(FieldAge, 25))
	require.NoError(t, d.SetField(FieldGender, "female"))
	require.NoError(t, d.SetField(FieldLookingFor, "men"))
	assert.Empty(t, d.Problems(RequiredFields...))
	assert.Empty(t, d.Problems(FieldBio, FieldInterests))
}

func TestParseDraft(t *testing.T) {
	data := []byte(`
name: Ana
age: 26
gender: female
looking_for: men
interests: [music, coffee]
importance_of_humor: 90
`)
	d, err := ParseDraft(data)
	require.NoError(t, err)
	assert.Equal(t, "Ana", d.Name)
	assert.Equal(t, 26, d.Age)
	assert.Equal(t, GenderFemale, d.Gender)
	assert.Equal(t, LookingForMen, d.LookingFor)
	assert.Equal(t, []string{"music", "coffee"}, d.Interests)
	assert.Equal(t, 90, d.ImportanceOfHumor)
	assert.Equal(t, DefaultImportance, d.ImportanceOfLooks, "absent keys keep defaults")
}

func TestParseDraftRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown interest", "interests: [skydiving]"},
		{"duplicate interest", "interests: [music, music]"},
		{"bad gender", "gender: robot"},
		{"importance out of range", "importance_of_looks: 120"},
		{"negative age", "age: -3"},
		{"not yaml", "name: [unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDraft([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestEncodeDraftRoundTrip(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.SetField(FieldName, "Ana"))
	require.NoError(t, d.ToggleInterest(InterestGaming))

	data, err := EncodeDraft(d)
	require.NoError(t, err)
	back, err := ParseDraft(data)
	require.NoError(t, err)
	assert.Equal(t, d, back)
}
