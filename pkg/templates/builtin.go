package templates

// BuiltIn returns a registry seeded with the agent templates the platform
// ships with. The trees mirror the defaults the IRIS dashboard applies when
// creating an agent of the same kind.
func BuiltIn() *Registry {
	r := NewRegistry()

	r.Register("elderly-care", map[string]any{
		"name":        "Elderly Care Companion",
		"description": "Checks in on patients, tracks medication schedules, and escalates concerns to caregivers.",
		"settings": map[string]any{
			"language": "en",
			"tone":     "warm",
			"schedule": map[string]any{
				"enabled":  true,
				"timezone": "UTC",
				"check_in_times": []any{
					"09:00", "13:00", "19:00",
				},
			},
			"escalation": map[string]any{
				"enabled":   true,
				"threshold": "medium",
			},
		},
	})

	r.Register("customer-support", map[string]any{
		"name":        "Customer Support Agent",
		"description": "Answers product questions from connected knowledge bases and hands off to humans when stuck.",
		"settings": map[string]any{
			"language": "en",
			"tone":     "professional",
			"schedule": map[string]any{
				"enabled": false,
			},
			"handoff": map[string]any{
				"enabled":          true,
				"after_turns":      10,
				"fallback_message": "Let me connect you with a teammate.",
			},
		},
	})

	r.Register("sales-outreach", map[string]any{
		"name":        "Sales Outreach Agent",
		"description": "Qualifies inbound leads and books meetings on the team calendar.",
		"settings": map[string]any{
			"language": "en",
			"tone":     "friendly",
			"schedule": map[string]any{
				"enabled":  true,
				"timezone": "UTC",
			},
			"qualification": map[string]any{
				"min_score": 40,
				"fields":    []any{"company", "budget", "timeline"},
			},
		},
	})

	return r
}
