package rules

// Category is a named set of lower-case tokens. A category contributes its
// weight once when any token occurs as a substring of the scored text.
type Category struct {
	Name   string
	Weight float64
	Words  []string
}

// DefaultCategories returns the built-in keyword table. Each call returns a
// fresh copy so callers can extend it without touching the defaults.
func DefaultCategories() []Category {
	out := make([]Category, len(defaultCategories))
	for i, c := range defaultCategories {
		out[i] = Category{
			Name:   c.Name,
			Weight: c.Weight,
			Words:  append([]string(nil), c.Words...),
		}
	}
	return out
}

var defaultCategories = []Category{
	{
		Name:   "urgent",
		Weight: 3,
		Words: []string{
			"urgent", "asap", "emergency", "critical", "immediately", "important",
			"deadline", "overdue", "today", "tonight", "tomorrow",
		},
	},
	{
		Name:   "time",
		Weight: 2,
		Words: []string{
			"today", "tonight", "tomorrow", "morning", "afternoon", "evening",
			"this week", "next week", "eod", "end of day", "deadline", "due",
		},
	},
	{
		Name:   "work",
		Weight: 2,
		Words: []string{
			"meeting", "client", "customer", "report", "project", "presentation",
			"proposal", "review", "bug", "fix", "deploy", "release", "server",
			"production", "invoice", "boss", "interview", "email",
		},
	},
	{
		Name:   "health",
		Weight: 2,
		Words: []string{
			"doctor", "hospital", "medicine", "medication", "dentist", "pharmacy",
			"prescription", "therapy", "health", "clinic", "vaccine", "sick",
		},
	},
	{
		Name:   "low_priority",
		Weight: -2,
		Words: []string{
			"maybe", "someday", "eventually", "sometime", "whenever", "optional",
			"nice to have", "no rush", "not urgent", "if time", "when possible",
			"can wait", "low priority", "later",
		},
	},
	{
		Name:   "personal",
		Weight: -1,
		Words: []string{
			"clean", "garage", "laundry", "groceries", "shopping", "hobby",
			"movie", "game", "organize", "vacation", "garden", "decorate",
		},
	},
}
