package taxonomy

import (
	"errors"
	"fmt"
)

// Taxonomy is an immutable, ordered set of categories with their detectors.
type Taxonomy struct {
	categories  []Category
	byName      map[Name]int
	detectors   map[Name]Detector
	defaultName Name
}

// std is the built-in taxonomy, built once from the seed tables.
var std *Taxonomy

func init() {
	t, err := New(seedCategories, DefaultName)
	if err != nil {
		panic(fmt.Sprintf("taxonomy: invalid seed: %v", err))
	}
	std = t
}

// Default returns the built-in golf taxonomy.
func Default() *Taxonomy {
	return std
}

// New builds a taxonomy from categories in declaration order. defaultName
// must name one of the categories unless categories is empty.
func New(categories []Category, defaultName Name) (*Taxonomy, error) {
	t := &Taxonomy{
		categories:  make([]Category, 0, len(categories)),
		byName:      make(map[Name]int, len(categories)),
		detectors:   make(map[Name]Detector, len(categories)),
		defaultName: defaultName,
	}
	for _, c := range categories {
		if c.Name == "" {
			return nil, errors.New("category with empty name")
		}
		if _, dup := t.byName[c.Name]; dup {
			return nil, fmt.Errorf("duplicate category %q", c.Name)
		}
		t.byName[c.Name] = len(t.categories)
		t.categories = append(t.categories, c.clone())
		t.detectors[c.Name] = newDetector(c)
	}
	if len(categories) > 0 {
		if _, ok := t.byName[defaultName]; !ok {
			return nil, fmt.Errorf("default category %q not in taxonomy", defaultName)
		}
	}
	return t, nil
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int {
	return len(t.categories)
}

// Categories returns copies of all categories in declaration order.
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = c.clone()
	}
	return out
}

// Get returns a copy of the named category.
func (t *Taxonomy) Get(name Name) (Category, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Category{}, false
	}
	return t.categories[i].clone(), true
}

// DefaultCategory returns the fallback category, or false for an empty taxonomy.
func (t *Taxonomy) DefaultCategory() (Category, bool) {
	return t.Get(t.defaultName)
}

// Detector returns the detector for the named category.
func (t *Taxonomy) Detector(name Name) (Detector, bool) {
	d, ok := t.detectors[name]
	return d, ok
}
