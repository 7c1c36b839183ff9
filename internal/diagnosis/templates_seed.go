package diagnosis

import "github.com/abhisek/swingplan/internal/taxonomy"

// seedTemplates holds the fault and area-of-game diagnoses referenced by
// DefaultRules.
var seedTemplates = []Template{
	{
		ID: "topping",
		Diagnosis: "Topped shots happen when the club reaches the bottom of its arc before the ball " +
			"or rises through impact, so the leading edge catches the top half of the ball. " +
			"The fix is a forward low point with the weight moving to the lead side.",
		RootCauses: []string{
			"Weight hanging on the trail foot through impact",
			"Early extension: hips moving toward the ball and the chest lifting",
			"Trying to scoop or lift the ball into the air",
			"Ball position too far forward in the stance",
		},
	},
	{
		ID: "chunking",
		Diagnosis: "Fat shots strike the ground before the ball. The low point of the swing sits " +
			"behind the ball, usually because the body stalls and the hands release the club early.",
		RootCauses: []string{
			"Casting the club from the top so the angle releases early",
			"Weight staying back instead of shifting to the lead side",
			"Dipping the trail shoulder on the downswing",
			"Ball position too far back for the club",
		},
	},
	{
		ID: "slicing",
		Diagnosis: "A slice curves hard to the right for a right-handed golfer because the clubface " +
			"is open to an out-to-in swing path at impact. Squaring the face to the path " +
			"straightens the flight.",
		RootCauses: []string{
			"Weak grip that leaves the face open at impact",
			"Over-the-top move creating an out-to-in path",
			"Shoulders aimed left of the target at address",
			"Lack of forearm rotation through the release",
		},
	},
	{
		ID: "hooking",
		Diagnosis: "A hook curves hard to the left for a right-handed golfer because the clubface is " +
			"closed to an in-to-out path. Controlling the release and the path brings the ball back online.",
		RootCauses: []string{
			"Strong grip that shuts the face through impact",
			"Path swinging too far from the inside",
			"Hands flipping over at impact instead of the body rotating",
		},
	},
	{
		ID: "putting",
		Diagnosis: "Putting problems usually come from poor speed control rather than poor aim. " +
			"Three-putts start with lag putts left well short or long, then a missed return putt.",
		RootCauses: []string{
			"Inconsistent stroke length controlling distance",
			"Reading too little break so putts miss on the low side",
			"Deceleration through impact",
			"Eyes not over the ball line at address",
		},
	},
	{
		ID: "short-game",
		Diagnosis: "Short-game misses come from unclear landing spots and poor contact with the " +
			"wedges. Consistent setup and a chosen landing spot turn chips into tap-ins.",
		RootCauses: []string{
			"No specific landing spot chosen before the shot",
			"Wrists flipping to help the ball up",
			"Wrong club for the amount of green to work with",
			"Weight drifting back on short shots",
		},
	},
	{
		ID: "distance",
		Diagnosis: "Distance control problems come from not knowing true carry yardages and from " +
			"tempo that changes shot to shot. Known numbers and a repeatable rhythm fix most of it.",
		RootCauses: []string{
			"Playing to total distance instead of carry",
			"Gaps between clubs that have never been measured",
			"Swing length and tempo varying under pressure",
		},
	},
}

// seedCategoryTemplates are used when no rule matches but the problem was
// classified into a category.
var seedCategoryTemplates = map[taxonomy.Name]Template{
	taxonomy.BallStriking: {
		ID:        "category-ball-striking",
		Diagnosis: "Your ball striking needs more consistent contact. Solid strikes come from a stable low point in front of the ball.",
		RootCauses: []string{
			"Low point moving from swing to swing",
			"Weight transfer that stalls before impact",
			"Setup and ball position that change between clubs",
		},
	},
	taxonomy.DrivingAccuracy: {
		ID:        "category-driving-accuracy",
		Diagnosis: "Your tee shots are missing fairways. Accuracy off the tee depends on face control and a repeatable swing path.",
		RootCauses: []string{
			"Clubface open or closed relative to the path",
			"Alignment that drifts from target",
			"Swinging harder than you can control",
		},
	},
	taxonomy.DistanceControl: {
		ID:        "category-distance-control",
		Diagnosis: "Your approach shots are finishing the wrong distance from the flag. Known yardages and tempo drive distance control.",
		RootCauses: []string{
			"Carry distances that have not been measured",
			"Inconsistent tempo",
			"Club selection that ignores conditions",
		},
	},
	taxonomy.ShortGame: {
		ID:        "category-short-game",
		Diagnosis: "Your short game is costing strokes around the green. Technique and shot selection both matter inside 50 yards.",
		RootCauses: []string{
			"Inconsistent contact with wedges",
			"No clear landing spot",
			"Limited variety of shots around the green",
		},
	},
	taxonomy.Putting: {
		ID:        "category-putting",
		Diagnosis: "Your putting is where strokes are leaking. Speed control and green reading decide most putts.",
		RootCauses: []string{
			"Inconsistent pace on long putts",
			"Misreading break",
			"A stroke that changes under pressure",
		},
	},
}

var seedGenericTemplate = Template{
	ID: "generic",
	Diagnosis: "Based on your description, the issue looks like a mix of technique and consistency. " +
		"A focused plan on fundamentals will help pin down the cause.",
	RootCauses: []string{
		"Setup fundamentals such as grip, posture and alignment",
		"Inconsistent swing tempo",
		"Limited structured practice on the weak area",
	},
}
