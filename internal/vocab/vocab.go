// internal/vocab/vocab.go

// Package vocab holds the versioned keyword vocabulary the interpreter matches
// utterances against. Matching is purely lexical: fixed tables, no learned
// model, so every extraction is auditable and reproducible.
package vocab

import (
	"regexp"
	"strconv"
	"strings"

	"foodiebot/internal/models"
)

// Version identifies the vocabulary tables. Bump it whenever a table changes
// so logged signals can be traced back to the table revision that produced them.
const Version = "2025.08"

type moodEntry struct {
	keyword string
	mood    models.Mood
	re      *regexp.Regexp
}

type tagEntry struct {
	keyword string
	tag     string
	re      *regexp.Regexp
}

type categoryEntry struct {
	keyword  string
	category string
	re       *regexp.Regexp
}

func wordRe(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
}

var moodTable = buildMoods([]struct {
	keyword string
	mood    models.Mood
}{
	{"comfort", models.MoodComfort},
	{"comforting", models.MoodComfort},
	{"cozy", models.MoodComfort},
	{"adventurous", models.MoodAdventurous},
	{"adventure", models.MoodAdventurous},
	{"bold", models.MoodAdventurous},
	{"exotic", models.MoodAdventurous},
	{"spicy", models.MoodSpicy},
	{"fiery", models.MoodSpicy},
	{"hot", models.MoodSpicy},
	{"healthy", models.MoodHealthy},
	{"light", models.MoodHealthy},
	{"fresh", models.MoodHealthy},
	{"indulgent", models.MoodIndulgent},
	{"indulge", models.MoodIndulgent},
	{"decadent", models.MoodIndulgent},
	{"treat myself", models.MoodIndulgent},
})

func buildMoods(raw []struct {
	keyword string
	mood    models.Mood
}) []moodEntry {
	entries := make([]moodEntry, len(raw))
	for i, r := range raw {
		entries[i] = moodEntry{keyword: r.keyword, mood: r.mood, re: wordRe(r.keyword)}
	}
	return entries
}

var tagTable = buildTags([]struct {
	keyword string
	tag     string
}{
	{"spicy", "spicy"},
	{"hot", "spicy"},
	{"vegan", "vegan"},
	{"vegetarian", "vegan"},
	{"veggie", "vegan"},
	{"plant-based", "vegan"},
	{"gluten-free", "gluten-free"},
	{"gluten free", "gluten-free"},
	{"classic", "classic"},
	{"gourmet", "gourmet"},
	{"fancy", "gourmet"},
})

func buildTags(raw []struct {
	keyword string
	tag     string
}) []tagEntry {
	entries := make([]tagEntry, len(raw))
	for i, r := range raw {
		entries[i] = tagEntry{keyword: r.keyword, tag: r.tag, re: wordRe(r.keyword)}
	}
	return entries
}

var categoryTable = buildCategories([]struct {
	keyword  string
	category string
}{
	{"burger", "Burgers"},
	{"burgers", "Burgers"},
	{"cheeseburger", "Burgers"},
	{"pizza", "Pizza"},
	{"pizzas", "Pizza"},
	{"chicken", "Fried Chicken"},
	{"wings", "Fried Chicken"},
	{"tenders", "Fried Chicken"},
	{"taco", "Tacos & Wraps"},
	{"tacos", "Tacos & Wraps"},
	{"wrap", "Tacos & Wraps"},
	{"wraps", "Tacos & Wraps"},
	{"dessert", "Desserts"},
	{"desserts", "Desserts"},
	{"cake", "Desserts"},
	{"sundae", "Desserts"},
	{"cheesecake", "Desserts"},
	{"brownie", "Desserts"},
	{"ice cream", "Desserts"},
})

func buildCategories(raw []struct {
	keyword  string
	category string
}) []categoryEntry {
	entries := make([]categoryEntry, len(raw))
	for i, r := range raw {
		entries[i] = categoryEntry{keyword: r.keyword, category: r.category, re: wordRe(r.keyword)}
	}
	return entries
}

// Budget expressions. Each pattern captures the amount; "under $10",
// "below 12.50", "$10 or less", "max $8" all resolve to a ceiling.
var budgetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:under|below|less than|at most|max(?:imum)?(?: of)?)\s*\$?\s*(\d+(?:\.\d{1,2})?)`),
	regexp.MustCompile(`\$\s*(\d+(?:\.\d{1,2})?)\s*(?:or less|or under|max|tops|budget)`),
}

var (
	intensifierRe = regexp.MustCompile(`\b(?:really|very|so|super|totally|absolutely|definitely)\b`)
	emphasisRe    = regexp.MustCompile(`\b(?:love|loving|perfect|amazing|awesome|great|yum|yummy|delicious|craving)\b`)
	hesitationRe  = regexp.MustCompile(`\b(?:maybe|not sure|too expensive|expensive|don'?t like|not for me|hate)\b`)
	intentRe      = regexp.MustCompile(`\b(?:order|buy|add to cart|take it|i'?ll take|i will take)\b`)
)

// LastMood returns the mood whose keyword appears last in the text. When two
// moods are mentioned the last-mentioned one wins; that is the documented
// tie-break policy.
func LastMood(text string) models.Mood {
	text = strings.ToLower(text)
	var mood models.Mood
	best := -1
	for _, e := range moodTable {
		locs := e.re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		if start := locs[len(locs)-1][0]; start > best {
			best = start
			mood = e.mood
		}
	}
	return mood
}

// Tags returns the canonical dietary/spice tags mentioned in the text, in
// order of first mention, deduplicated.
func Tags(text string) []string {
	text = strings.ToLower(text)
	type hit struct {
		pos int
		tag string
	}
	var hits []hit
	seen := make(map[string]bool)
	for _, e := range tagTable {
		loc := e.re.FindStringIndex(text)
		if loc == nil || seen[e.tag] {
			continue
		}
		seen[e.tag] = true
		hits = append(hits, hit{pos: loc[0], tag: e.tag})
	}
	// insertion-sort by position; the table is small
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	tags := make([]string, 0, len(hits))
	for _, h := range hits {
		tags = append(tags, h.tag)
	}
	return tags
}

// BudgetCeiling extracts a budget ceiling from the text, or nil when none is
// expressed. When several amounts are mentioned the last-mentioned wins,
// mirroring the mood tie-break.
func BudgetCeiling(text string) *float64 {
	text = strings.ToLower(text)
	best := -1
	var ceiling float64
	for _, re := range budgetPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			amount, err := strconv.ParseFloat(text[m[2]:m[3]], 64)
			if err != nil || amount <= 0 {
				continue
			}
			if m[0] > best {
				best = m[0]
				ceiling = amount
			}
		}
	}
	if best < 0 {
		return nil
	}
	return &ceiling
}

// EnthusiasmLevel maps intensifiers, emphasis words and exclamation marks to
// the ordinal enthusiasm scale. Zero matches means unspecified.
func EnthusiasmLevel(text string) models.Enthusiasm {
	text = strings.ToLower(text)
	points := len(intensifierRe.FindAllString(text, -1))
	points += 2 * len(emphasisRe.FindAllString(text, -1))
	bangs := strings.Count(text, "!")
	if bangs > 3 {
		bangs = 3
	}
	points += bangs

	switch {
	case points == 0:
		return models.EnthusiasmUnspecified
	case points == 1:
		return models.EnthusiasmLow
	case points <= 3:
		return models.EnthusiasmMedium
	default:
		return models.EnthusiasmHigh
	}
}

// HasHesitation reports dislike or hedging markers ("maybe", "too expensive").
func HasHesitation(text string) bool {
	return hesitationRe.MatchString(strings.ToLower(text))
}

// HasPurchaseIntent reports ordering language ("order", "i'll take it").
func HasPurchaseIntent(text string) bool {
	return intentRe.MatchString(strings.ToLower(text))
}

// CategoryHint returns the product category the text alludes to, or "" when
// none. Used only as a soft ranking preference, never as a hard filter.
func CategoryHint(text string) string {
	text = strings.ToLower(text)
	best := -1
	var category string
	for _, e := range categoryTable {
		loc := e.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if best == -1 || loc[0] < best {
			best = loc[0]
			category = e.category
		}
	}
	return category
}

// Mood to category affinity, used as a soft ranking preference. Values are in
// [0,1]; unlisted pairs score zero.
var moodAffinity = map[models.Mood]map[string]float64{
	models.MoodComfort: {
		"Pizza":         0.9,
		"Burgers":       0.8,
		"Fried Chicken": 0.7,
		"Desserts":      0.6,
	},
	models.MoodAdventurous: {
		"Tacos & Wraps": 0.9,
		"Fried Chicken": 0.7,
		"Pizza":         0.5,
	},
	models.MoodSpicy: {
		"Fried Chicken": 0.9,
		"Tacos & Wraps": 0.8,
		"Burgers":       0.7,
	},
	models.MoodHealthy: {
		"Tacos & Wraps": 0.8,
		"Pizza":         0.5,
	},
	models.MoodIndulgent: {
		"Desserts":      1.0,
		"Burgers":       0.7,
		"Pizza":         0.6,
	},
}

// MoodCategoryAffinity returns the soft preference of a mood for a category.
func MoodCategoryAffinity(mood models.Mood, category string) float64 {
	if mood == "" {
		return 0
	}
	return moodAffinity[mood][category]
}
