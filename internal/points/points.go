package points

// Point values per recycling category. Single source of truth for both
// upload ingestion and any client-side "how many points will I earn" preview.
var table = map[string]int{
	"plastic": 25,
	"glass":   35,
	"paper":   20,
	"metal":   30,
	"ewaste":  50,
	"textile": 40,
}

// DefaultPoints is awarded for uploads with an unknown or missing category.
const DefaultPoints = 10

// Categories lists the known recycling categories in display order.
var Categories = []string{"plastic", "glass", "paper", "metal", "ewaste", "textile"}

// For returns the point value for a category. It is total over all strings:
// any unknown category (including the empty string) yields DefaultPoints.
func For(category string) int {
	if v, ok := table[category]; ok {
		return v
	}
	return DefaultPoints
}

// IsKnown reports whether category is one of the six known categories.
func IsKnown(category string) bool {
	_, ok := table[category]
	return ok
}
