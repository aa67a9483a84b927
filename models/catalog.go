package models

// CatalogCategory is one picker group of the exercise catalog.
type CatalogCategory struct {
	Name      string   `json:"name"`
	Exercises []string `json:"exercises"`
}

// Catalog is the read-only list of exercises a user can plan, in picker order.
type Catalog []CatalogCategory

var defaultCatalog = Catalog{
	{Name: "Upper Body", Exercises: []string{"Push-ups", "Pull-ups", "Bench Press", "Shoulder Press", "Bicep Curls", "Tricep Dips"}},
	{Name: "Lower Body", Exercises: []string{"Squats", "Lunges", "Deadlifts", "Leg Press", "Calf Raises", "Leg Curls"}},
	{Name: "Core", Exercises: []string{"Planks", "Crunches", "Russian Twists", "Mountain Climbers", "Leg Raises", "Bicycle Crunches"}},
	{Name: "Cardio", Exercises: []string{"Running", "Cycling", "Jump Rope", "Burpees", "High Knees", "Jumping Jacks"}},
	{Name: "Flexibility", Exercises: []string{"Yoga", "Stretching", "Foam Rolling", "Dynamic Stretches"}},
}

// DefaultCatalog returns a copy of the built-in exercise catalog.
func DefaultCatalog() Catalog {
	out := make(Catalog, len(defaultCatalog))
	for i, c := range defaultCatalog {
		names := make([]string, len(c.Exercises))
		copy(names, c.Exercises)
		out[i] = CatalogCategory{Name: c.Name, Exercises: names}
	}
	return out
}

// Contains reports whether name is listed under category.
func (c Catalog) Contains(category, name string) bool {
	for _, cat := range c {
		if cat.Name != category {
			continue
		}
		for _, ex := range cat.Exercises {
			if ex == name {
				return true
			}
		}
	}
	return false
}

// AsMap returns the catalog keyed by category name.
func (c Catalog) AsMap() map[string][]string {
	out := make(map[string][]string, len(c))
	for _, cat := range c {
		out[cat.Name] = cat.Exercises
	}
	return out
}
