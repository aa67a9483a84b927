package models

// CategoryColors maps catalog categories to badge hex colors.
var CategoryColors = map[string]string{
	"Upper Body":  "#667eea",
	"Lower Body":  "#f97316",
	"Core":        "#eab308",
	"Cardio":      "#ef4444",
	"Flexibility": "#22c55e",
}

// CategoryColor returns the color for a category, with a fallback.
func CategoryColor(category string) string {
	if c, ok := CategoryColors[category]; ok {
		return c
	}
	return "#9ca3af"
}
