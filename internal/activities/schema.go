package activities

import "github.com/gwcare/glowy/internal/llm"

// ActivitiesSchema is the JSON Schema for generated daily activities.
var ActivitiesSchema = &llm.Schema{
	Name:        "daily-activities",
	Description: "A batch of 3-5 simple, supportive daily wellness activities",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"activities": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 5,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Unique activity id, e.g. act-1678886400000",
						},
						"task": map[string]any{
							"type":        "string",
							"description": "The activity text shown to the user",
						},
						"completed": map[string]any{
							"type": "boolean",
						},
					},
					"required": []any{"id", "task", "completed"},
				},
			},
		},
		"required": []any{"activities"},
	},
}
