package profile

import (
	"slices"
)

// Gender is the user's self-described gender.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// AllGenders returns the selectable genders in display order.
func AllGenders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// Valid reports whether g is one of the selectable genders.
func (g Gender) Valid() bool {
	return slices.Contains(AllGenders(), g)
}

// LookingFor is who the user wants to be matched with.
type LookingFor string

const (
	LookingForUnset LookingFor = ""
	LookingForMen   LookingFor = "men"
	LookingForWomen LookingFor = "women"
	LookingForBoth  LookingFor = "both"
)

// AllLookingFor returns the selectable preferences in display order.
func AllLookingFor() []LookingFor {
	return []LookingFor{LookingForMen, LookingForWomen, LookingForBoth}
}

// Valid reports whether l is one of the selectable preferences.
func (l LookingFor) Valid() bool {
	return slices.Contains(AllLookingFor(), l)
}

// Interest tags offered by the profile wizard.
const (
	InterestMusic   = "music"
	InterestMovies  = "movies"
	InterestCoffee  = "coffee"
	InterestReading = "reading"
	InterestGaming  = "gaming"
)

// Catalog returns the fixed interest catalog in display order.
func Catalog() []string {
	return []string{InterestMusic, InterestMovies, InterestCoffee, InterestReading, InterestGaming}
}

// InCatalog reports whether tag is part of the interest catalog.
func InCatalog(tag string) bool {
	return slices.Contains(Catalog(), tag)
}

// DefaultImportance is the starting value of every importance slider.
const DefaultImportance = 50

// Draft is the in-progress profile collected by the wizard.
type Draft struct {
	Name               string     `yaml:"name" json:"name"`
	Age                int        `yaml:"age" json:"age"`
	Gender             Gender     `yaml:"gender" json:"gender"`
	LookingFor         LookingFor `yaml:"looking_for" json:"lookingFor"`
	Bio                string     `yaml:"bio" json:"bio"`
	Interests          []string   `yaml:"interests" json:"interests"`
	ImportanceOfHumor  int        `yaml:"importance_of_humor" json:"importanceOfHumor"`
	ImportanceOfLooks  int        `yaml:"importance_of_looks" json:"importanceOfLooks"`
	ImportanceOfValues int        `yaml:"importance_of_values" json:"importanceOfValues"`
}

// NewDraft returns an empty draft with the importance sliders at their defaults.
func NewDraft() Draft {
	return Draft{
		Interests:          []string{},
		ImportanceOfHumor:  DefaultImportance,
		ImportanceOfLooks:  DefaultImportance,
		ImportanceOfValues: DefaultImportance,
	}
}

// Clone returns a deep copy of d.
func (d Draft) Clone() Draft {
	c := d
	c.Interests = slices.Clone(d.Interests)
	if c.Interests == nil {
		c.Interests = []string{}
	}
	return c
}

// HasInterest reports whether tag is currently selected.
func (d Draft) HasInterest(tag string) bool {
	return slices.Contains(d.Interests, tag)
}

// ToggleInterest adds tag when absent and removes it when present.
// The relative order of the remaining tags is preserved.
func (d *Draft) ToggleInterest(tag string) error {
	if !InCatalog(tag) {
		return ErrUnknownInterest
	}
	if i := slices.Index(d.Interests, tag); i >= 0 {
		d.Interests = slices.Delete(slices.Clone(d.Interests), i, i+1)
		return nil
	}
	d.Interests = append(slices.Clone(d.Interests), tag)
	return nil
}

// DisplayName returns the name, or a stand-in when the user left it empty.
func (d Draft) DisplayName() string {
	if d.Name == "" {
		return "You"
	}
	return d.Name
}
