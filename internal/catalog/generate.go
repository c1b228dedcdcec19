// internal/catalog/generate.go
package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"foodiebot/internal/models"
)

var categoryNames = []struct {
	category string
	names    []string
}{
	{"Burgers", []string{"Spicy Fusion Dragon Burger", "Classic All-American Burger", "Plant-Based Beyond Burger", "BBQ Bacon Cheeseburger"}},
	{"Pizza", []string{"Margherita Classica", "Meat Lovers Supreme", "BBQ Chicken Pineapple", "Vegan Mediterranean"}},
	{"Fried Chicken", []string{"Nashville Hot Wings", "Honey Garlic Tenders", "Korean Fried Chicken", "Classic Fried Chicken"}},
	{"Tacos & Wraps", []string{"Korean Beef Taco", "Crispy Fish Taco", "Buffalo Chicken Wrap", "Veggie Hummus Wrap"}},
	{"Desserts", []string{"Chocolate Cake Slice", "Ice Cream Sundae", "Mini Cheesecake", "Brownie"}},
}

var (
	dietaryPool  = []string{"spicy", "vegan", "gluten-free", "classic", "gourmet"}
	moodPool     = []string{"comfort", "adventurous", "healthy", "indulgent"}
	allergenPool = []string{"gluten", "dairy", "soy", "nuts"}
)

// Generate produces the built-in 20-product catalog. Output is fully
// determined by the seed so tests and re-seeded stores agree on content.
func Generate(seed int64) []models.Product {
	rng := rand.New(rand.NewSource(seed))

	var products []models.Product
	pid := 1
	for _, cn := range categoryNames {
		for _, name := range cn.names {
			products = append(products, models.Product{
				ID:              fmt.Sprintf("FF%03d", pid),
				Name:            name,
				Category:        cn.category,
				Description:     fmt.Sprintf("%s, a delicious %s option.", name, strings.ToLower(cn.category)),
				Ingredients:     []string{"main ingredient", "seasoning", "garnish"},
				Price:           round2(5.0 + rng.Float64()*19.99),
				Calories:        150 + rng.Intn(751),
				PrepTime:        fmt.Sprintf("%d mins", 5+rng.Intn(14)),
				DietaryTags:     sample(rng, dietaryPool, 2),
				MoodTags:        sample(rng, moodPool, 2),
				Allergens:       sample(rng, allergenPool, 1),
				PopularityScore: 60 + rng.Intn(41),
				ChefSpecial:     rng.Intn(2) == 1,
				LimitedTime:     rng.Intn(2) == 1,
				SpiceLevel:      rng.Intn(11),
			})
			pid++
		}
	}
	return products
}

func sample(rng *rand.Rand, pool []string, n int) []string {
	idx := rng.Perm(len(pool))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
