package catalog

// Schema is a named JSON Schema definition for one catalog file kind.
type Schema struct {
	Name       string
	Definition map[string]any
}

var difficultyEnum = []any{"", "beginner", "intermediate", "advanced", "expert"}

func textField(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func stringList(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": description,
	}
}

// DrillSchema validates a drill catalog document.
var DrillSchema = &Schema{
	Name: "drill-catalog",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"version": textField("Catalog format version, semver with a leading v"),
			"drills": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":       map[string]any{"type": "string", "minLength": 1},
						"title":    map[string]any{"type": "string", "pattern": `\S`},
						"overview": textField("What the drill trains"),
						"category": textField("Free category label"),
						"focus":    stringList("Focus tags, most important first"),
						"difficulty": map[string]any{
							"type": "string",
							"enum": difficultyEnum,
						},
						"duration":        textField("Duration label such as \"10 minutes\""),
						"video_ref":       textField("Optional video reference"),
						"instruction1":    textField("Step 1"),
						"instruction2":    textField("Step 2"),
						"instruction3":    textField("Step 3"),
						"instruction4":    textField("Step 4"),
						"instruction5":    textField("Step 5"),
						"common_mistake1": textField("Common mistake"),
						"common_mistake2": textField("Common mistake"),
						"common_mistake3": textField("Common mistake"),
						"common_mistake4": textField("Common mistake"),
						"common_mistake5": textField("Common mistake"),
						"pro_tip":         textField("Optional coaching tip"),
					},
					"required":             []any{"id", "title"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"version", "drills"},
		"additionalProperties": false,
	},
}

// ChallengeSchema validates a challenge catalog document.
var ChallengeSchema = &Schema{
	Name: "challenge-catalog",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"version": textField("Catalog format version, semver with a leading v"),
			"challenges": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": "string", "minLength": 1},
						"title":       map[string]any{"type": "string", "pattern": `\S`},
						"description": textField("What the golfer attempts"),
						"difficulty": map[string]any{
							"type": "string",
							"enum": difficultyEnum,
						},
						"category":     textField("Free category label"),
						"metric":       textField("Primary measured outcome"),
						"metrics":      stringList("Additional measured outcomes"),
						"instruction1": textField("Step 1"),
						"instruction2": textField("Step 2"),
						"instruction3": textField("Step 3"),
						"attempts": map[string]any{
							"type":    "integer",
							"minimum": 0,
						},
					},
					"required":             []any{"id", "title"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"version", "challenges"},
		"additionalProperties": false,
	},
}
