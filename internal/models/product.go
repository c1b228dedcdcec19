// internal/models/product.go
package models

// Product is an immutable catalog row. The catalog store owns it; the engine
// only reads it.
type Product struct {
	ID              string   `json:"productId"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Ingredients     []string `json:"ingredients,omitempty"`
	Price           float64  `json:"price"`
	Calories        int      `json:"calories,omitempty"`
	PrepTime        string   `json:"prepTime,omitempty"`
	DietaryTags     []string `json:"dietaryTags,omitempty"`
	MoodTags        []string `json:"moodTags,omitempty"`
	Allergens       []string `json:"allergens,omitempty"`
	PopularityScore int      `json:"popularityScore"`
	ChefSpecial     bool     `json:"chefSpecial"`
	LimitedTime     bool     `json:"limitedTime"`
	SpiceLevel      int      `json:"spiceLevel"`
}

// Tags returns the dietary and mood tags as one set for overlap checks.
func (p Product) Tags() []string {
	tags := make([]string, 0, len(p.DietaryTags)+len(p.MoodTags))
	tags = append(tags, p.DietaryTags...)
	tags = append(tags, p.MoodTags...)
	return tags
}

// HasAnyTag reports whether the product carries at least one of the given tags.
func (p Product) HasAnyTag(tags map[string]bool) bool {
	for _, t := range p.DietaryTags {
		if tags[t] {
			return true
		}
	}
	for _, t := range p.MoodTags {
		if tags[t] {
			return true
		}
	}
	return false
}
