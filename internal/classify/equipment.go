package classify

// equipmentRule maps a phrase found in problem text to the equipment keyword
// it implies.
type equipmentRule struct {
	phrase  string
	keyword string
}

// equipmentRules is ordered most specific first; the first hit wins.
var equipmentRules = []equipmentRule{
	{"tee shot", "driver"},
	{"off the tee", "driver"},
	{"driver", "driver"},
	{"fairway wood", "fairway wood"},
	{"3 wood", "fairway wood"},
	{"3-wood", "fairway wood"},
	{"hybrid", "hybrid"},
	{"sand wedge", "sand wedge"},
	{"lob wedge", "lob wedge"},
	{"gap wedge", "wedge"},
	{"pitching wedge", "wedge"},
	{"wedge", "wedge"},
	{"putter", "putter"},
	{"long iron", "iron"},
	{"short iron", "iron"},
	{"iron", "iron"},
}

// DetectEquipment returns the equipment keyword explicitly named in a
// lower-cased problem text, or "" when none is.
func DetectEquipment(text string) string {
	for _, r := range equipmentRules {
		if containsPhrase(text, r.phrase) {
			return r.keyword
		}
	}
	return ""
}
