// internal/catalog/seed.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"foodiebot/internal/common/errors"
	"foodiebot/internal/models"
)

// seedSchema validates operator-provided product seed files before anything
// touches a store. Prices must be non-negative and IDs unique per the
// catalog invariants.
const seedSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["productId", "name", "category", "price"],
		"properties": {
			"productId": {"type": "string", "minLength": 1},
			"name": {"type": "string", "minLength": 1},
			"category": {"type": "string", "minLength": 1},
			"description": {"type": "string"},
			"ingredients": {"type": "array", "items": {"type": "string"}},
			"price": {"type": "number", "minimum": 0},
			"calories": {"type": "integer", "minimum": 0},
			"prepTime": {"type": "string"},
			"dietaryTags": {"type": "array", "items": {"type": "string"}},
			"moodTags": {"type": "array", "items": {"type": "string"}},
			"allergens": {"type": "array", "items": {"type": "string"}},
			"popularityScore": {"type": "integer", "minimum": 0, "maximum": 100},
			"chefSpecial": {"type": "boolean"},
			"limitedTime": {"type": "boolean"},
			"spiceLevel": {"type": "integer", "minimum": 0, "maximum": 10}
		}
	}
}`

// LoadSeedFile reads and validates a JSON product seed file.
func LoadSeedFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(seedSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("validate seed file: %w", err)
	}
	if !result.Valid() {
		var details []string
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return nil, errors.NewSeedValidationError(strings.Join(details, "; "))
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("unmarshal seed file: %w", err)
	}

	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if seen[p.ID] {
			return nil, errors.NewSeedValidationError(fmt.Sprintf("duplicate productId %q", p.ID))
		}
		seen[p.ID] = true
	}
	return products, nil
}
