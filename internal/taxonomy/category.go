package taxonomy

// Name identifies a golf skill category.
type Name string

const (
	BallStriking    Name = "Ball Striking"
	DrivingAccuracy Name = "Driving Accuracy"
	DistanceControl Name = "Distance Control"
	ShortGame       Name = "Short Game"
	Putting         Name = "Putting"
)

// DefaultName is the fallback category when nothing in a problem matches.
// Contact is the most fundamental skill, so it wins by default.
const DefaultName = BallStriking

// AllNames returns every category name in declaration order.
func AllNames() []Name {
	return []Name{
		BallStriking,
		DrivingAccuracy,
		DistanceControl,
		ShortGame,
		Putting,
	}
}

// Category is a skill domain with the vocabulary used to match problems
// and catalog items against it.
type Category struct {
	Name             Name
	Keywords         []string
	RelatedEquipment []string
	OutcomeMetrics   []string // ordered
	SearchTerms      []string
}

// clone returns a deep copy so callers can never mutate the seed table.
func (c Category) clone() Category {
	return Category{
		Name:             c.Name,
		Keywords:         append([]string(nil), c.Keywords...),
		RelatedEquipment: append([]string(nil), c.RelatedEquipment...),
		OutcomeMetrics:   append([]string(nil), c.OutcomeMetrics...),
		SearchTerms:      append([]string(nil), c.SearchTerms...),
	}
}
