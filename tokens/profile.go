package tokens

// Profile bundles the counting rules of a platform.
type Profile struct {
	Name      string `json:"name" yaml:"name"`
	MaxWeight int    `json:"max_weight" yaml:"max_weight"`
	URLWeight int    `json:"url_weight" yaml:"url_weight"`
	CJKWeight int    `json:"cjk_weight" yaml:"cjk_weight"`
}

// Counter returns a counter using the profile's weights.
func (p Profile) Counter() *WeightedCounter {
	return NewWeightedCounterWithWeights(p.URLWeight, p.CJKWeight)
}

// Budget returns a budget for the profile's limit.
func (p Profile) Budget() *Budget {
	return NewBudgetWithCounter(p.MaxWeight, p.Counter())
}

// Profiles contains the built-in counting profiles.
var Profiles = map[string]Profile{
	"twitter": {
		Name:      "twitter",
		MaxWeight: 280,
		URLWeight: DefaultURLWeight,
		CJKWeight: DefaultCJKWeight,
	},

	// Default fallback
	"default": {
		Name:      "default",
		MaxWeight: DefaultMaxWeight,
		URLWeight: DefaultURLWeight,
		CJKWeight: DefaultCJKWeight,
	},
}

// GetProfile returns the named profile, or the default profile if not found.
func GetProfile(name string) Profile {
	if p, ok := Profiles[name]; ok {
		return p
	}
	return Profiles["default"]
}
