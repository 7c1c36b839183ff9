package taxonomy

// Detector decides whether a lower-cased text plausibly concerns one category.
// Implementations must be stateless and safe for concurrent use.
type Detector interface {
	Category() Name
	Matches(text string) bool
}

// detectorTerms is the vocabulary for a term-count detector.
type detectorTerms struct {
	primary   []string
	secondary []string
}

// termDetector matches when at least one primary term appears, or when
// MinSecondary secondary terms appear together.
type termDetector struct {
	name  Name
	terms detectorTerms
}

// MinSecondary is the number of secondary terms that stand in for one primary term.
const MinSecondary = 2

func (d *termDetector) Category() Name { return d.name }

func (d *termDetector) Matches(text string) bool {
	if ContainsAny(text, d.terms.primary) {
		return true
	}
	return CountContains(text, d.terms.secondary) >= MinSecondary
}

// newDetector builds the detector for c. Categories without seeded detector
// vocabulary fall back to their keywords as primary and equipment as
// secondary terms.
func newDetector(c Category) Detector {
	terms, ok := seedDetectors[c.Name]
	if !ok {
		terms = detectorTerms{primary: c.Keywords, secondary: c.RelatedEquipment}
	}
	return &termDetector{name: c.Name, terms: terms}
}
