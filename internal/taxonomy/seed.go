package taxonomy

// seedCategories defines the category taxonomy in declaration order.
// Declaration order is significant: classifier ties keep the earlier entry.
var seedCategories = []Category{
	{
		Name: BallStriking,
		Keywords: []string{
			"contact", "strike", "striking", "topping", "topped", "thin",
			"fat", "chunk", "compress", "ball first", "divot", "solid", "flush",
		},
		RelatedEquipment: []string{"iron", "hybrid"},
		OutcomeMetrics:   []string{"greens in regulation", "strike quality", "divot pattern"},
		SearchTerms:      []string{"contact", "impact", "strike", "compression", "ball first", "low point"},
	},
	{
		Name: DrivingAccuracy,
		Keywords: []string{
			"drive", "driving", "tee shot", "off the tee", "fairway", "slice",
			"slicing", "hook", "hooking", "accuracy", "straight", "push",
		},
		RelatedEquipment: []string{"driver", "fairway wood", "3 wood", "3-wood", "tee box"},
		OutcomeMetrics:   []string{"fairways hit", "driving distance", "dispersion"},
		SearchTerms:      []string{"driver", "tee shot", "alignment", "path", "clubface", "accuracy"},
	},
	{
		Name: DistanceControl,
		Keywords: []string{
			"distance", "yardage", "too long", "too short", "carry", "gapping",
			"club selection", "overshoot", "short of the green", "long of the green",
		},
		RelatedEquipment: []string{"rangefinder", "launch monitor"},
		OutcomeMetrics:   []string{"proximity to hole", "carry consistency", "greens in regulation"},
		SearchTerms:      []string{"distance", "yardage", "carry", "tempo", "gapping"},
	},
	{
		Name: ShortGame,
		Keywords: []string{
			"chip", "chipping", "pitch", "pitching", "bunker", "sand", "short game",
			"around the green", "flop", "up and down", "greenside",
		},
		RelatedEquipment: []string{"wedge", "sand wedge", "lob wedge", "gap wedge"},
		OutcomeMetrics:   []string{"up and down percentage", "sand saves", "proximity from chips"},
		SearchTerms:      []string{"chip", "pitch", "bunker", "wedge", "landing spot", "short game"},
	},
	{
		Name: Putting,
		Keywords: []string{
			"putt", "putting", "three putt", "3 putt", "3-putt", "lag",
			"green reading", "read the green", "stroke", "speed on the green",
		},
		RelatedEquipment: []string{"putter"},
		OutcomeMetrics:   []string{"putts per round", "three-putt avoidance", "make percentage inside 6 feet"},
		SearchTerms:      []string{"putt", "putting", "lag", "green", "speed", "line", "stroke"},
	},
}

// seedDetectors holds the primary/secondary vocabulary each category uses to
// decide whether an arbitrary text belongs to it.
var seedDetectors = map[Name]detectorTerms{
	BallStriking: {
		primary: []string{
			"contact", "strike", "striking", "impact", "compress", "ball first",
			"divot", "topping", "thin", "fat shot", "chunk",
		},
		secondary: []string{"iron", "low point", "weight transfer", "ball position", "solid"},
	},
	DrivingAccuracy: {
		primary:   []string{"driver", "drive", "tee shot", "fairway", "off the tee"},
		secondary: []string{"slice", "hook", "accuracy", "alignment", "path", "dispersion", "tee"},
	},
	DistanceControl: {
		primary:   []string{"distance", "yardage", "carry", "gapping"},
		secondary: []string{"target", "tempo", "long", "short", "club selection", "proximity"},
	},
	ShortGame: {
		primary: []string{
			"chip", "pitch", "bunker", "sand", "short game", "flop", "wedge",
			"greenside", "around the green", "up and down",
		},
		secondary: []string{"landing", "bounce", "loft", "green"},
	},
	Putting: {
		primary:   []string{"putt", "putting", "putter"},
		secondary: []string{"green", "hole", "cup", "lag", "stroke", "line", "speed", "read"},
	},
}
