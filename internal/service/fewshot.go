package service

// fewShots steers the recommendation model toward the structured
// specification format the matching engine consumes.
var fewShots = map[string]any{
	"examples": []map[string]any{
		{
			"user_message": "I need a laptop for video editing under 1500 dollars",
			"response": map[string]any{
				"device_type":      "laptop",
				"primary_use":      "video editing",
				"budget_usd":       1500,
				"hard_constraints": []string{"16GB RAM", "SSD"},
				"soft_preferences": []string{"lightweight"},
				"must_not_have":    []string{"refurbished"},
			},
		},
		{
			"user_message": "cheap phone with a good camera, no cracked screens",
			"response": map[string]any{
				"device_type":      "phone",
				"primary_use":      "photography",
				"budget_usd":       300,
				"hard_constraints": []string{"camera"},
				"soft_preferences": []string{"long battery life"},
				"must_not_have":    []string{"cracked"},
			},
		},
	},
}
