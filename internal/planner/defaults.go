package planner

import (
	"slices"

	"github.com/abhisek/swingplan/internal/catalog"
	"github.com/abhisek/swingplan/internal/taxonomy"
)

// defaultChallenges are used when the catalog offers nothing relevant.
// They are built once and handed out as copies.
var (
	defaultChallenges map[taxonomy.Name]catalog.Challenge
	genericChallenge  catalog.Challenge
)

func init() {
	defaultChallenges = map[taxonomy.Name]catalog.Challenge{
		taxonomy.BallStriking: {
			ID:          "default-ball-striking",
			Title:       "Solid Contact Test",
			Description: "Hit mid-iron shots off a flat lie and count strikes that take the ball first, then the turf.",
			Difficulty:  catalog.DifficultyBeginner,
			Category:    string(taxonomy.BallStriking),
			Metric:      "solid strikes",
			Metrics:     []string{"ball-first contact", "divot in front of ball"},
			Instructions: []string{
				"Lay a towel four inches behind the ball.",
				"Hit ten shots with a 7 iron without touching the towel.",
				"Count the shots that leave a divot in front of the ball.",
			},
			Attempts: 10,
		},
		taxonomy.DrivingAccuracy: {
			ID:          "default-driving-accuracy",
			Title:       "Fairway Finder",
			Description: "Pick two targets a fairway's width apart on the range and hit drives between them.",
			Difficulty:  catalog.DifficultyIntermediate,
			Category:    string(taxonomy.DrivingAccuracy),
			Metric:      "fairways hit",
			Metrics:     []string{"tee shot dispersion"},
			Instructions: []string{
				"Choose two range flags about 30 yards apart as fairway edges.",
				"Hit ten drives with your full pre-shot routine.",
				"Count the drives that finish between the flags.",
			},
			Attempts: 10,
		},
		taxonomy.DistanceControl: {
			ID:          "default-distance-control",
			Title:       "Yardage Ladder",
			Description: "Hit wedges to 50, 75 and 100 yards and measure how close each lands to the number.",
			Difficulty:  catalog.DifficultyIntermediate,
			Category:    string(taxonomy.DistanceControl),
			Metric:      "shots within 10 yards of target",
			Metrics:     []string{"carry distance", "gapping"},
			Instructions: []string{
				"Pick targets at 50, 75 and 100 yards.",
				"Hit three balls to each target, moving up the ladder.",
				"Score one point for every ball within 10 yards of its target.",
			},
			Attempts: 9,
		},
		taxonomy.ShortGame: {
			ID:          "default-short-game",
			Title:       "Up and Down Nine",
			Description: "Drop nine balls around the green and try to get each one up and down.",
			Difficulty:  catalog.DifficultyBeginner,
			Category:    string(taxonomy.ShortGame),
			Metric:      "up and downs",
			Metrics:     []string{"chip proximity"},
			Instructions: []string{
				"Drop three balls each in light rough, fringe and a greenside bunker.",
				"Chip or splash each ball onto the green.",
				"Hole out and count the balls finished in two strokes.",
			},
			Attempts: 9,
		},
		taxonomy.Putting: {
			ID:          "default-putting",
			Title:       "Around the Clock",
			Description: "Place balls in a circle three feet from the hole and hole them in a row.",
			Difficulty:  catalog.DifficultyBeginner,
			Category:    string(taxonomy.Putting),
			Metric:      "putts holed",
			Metrics:     []string{"short putt conversion"},
			Instructions: []string{
				"Place twelve balls in a circle three feet from the cup.",
				"Read each putt and commit to a line before you stroke it.",
				"Count the putts holed in a row.",
			},
			Attempts: 12,
		},
	}

	genericChallenge = catalog.Challenge{
		ID:          "default-general",
		Title:       "Nine Shot Scorecard",
		Description: "Play nine different shots on the range and score each against a target.",
		Difficulty:  catalog.DifficultyBeginner,
		Category:    "General",
		Metric:      "targets hit",
		Instructions: []string{
			"Pick a target for each club in your bag from wedge to driver.",
			"Hit one shot per club with your full routine.",
			"Score one point for every shot that finishes near its target.",
		},
		Attempts: 9,
	}
}

// DefaultChallenge returns the built-in challenge for a category, or the
// generic challenge when the category has none.
func DefaultChallenge(name taxonomy.Name) catalog.Challenge {
	c, ok := defaultChallenges[name]
	if !ok {
		return GenericChallenge()
	}
	return cloneChallenge(c)
}

// GenericChallenge returns the category-independent built-in challenge.
func GenericChallenge() catalog.Challenge {
	return cloneChallenge(genericChallenge)
}

func cloneChallenge(c catalog.Challenge) catalog.Challenge {
	c.Metrics = slices.Clone(c.Metrics)
	c.Instructions = slices.Clone(c.Instructions)
	return c
}
