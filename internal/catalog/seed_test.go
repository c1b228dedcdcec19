// internal/catalog/seed_test.go
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiebot/internal/common/errors"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSeedFile_Valid(t *testing.T) {
	path := writeSeedFile(t, `[
		{"productId": "FF001", "name": "Dragon Burger", "category": "Burgers", "price": 9.5,
		 "dietaryTags": ["spicy"], "popularityScore": 85},
		{"productId": "FF002", "name": "Vegan Wrap", "category": "Tacos & Wraps", "price": 8.25}
	]`)

	products, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "FF001", products[0].ID)
	assert.Equal(t, []string{"spicy"}, products[0].DietaryTags)
	assert.InDelta(t, 8.25, products[1].Price, 0.001)
}

func TestLoadSeedFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative price", `[{"productId": "FF001", "name": "X", "category": "Burgers", "price": -1}]`},
		{"missing name", `[{"productId": "FF001", "category": "Burgers", "price": 5}]`},
		{"empty product id", `[{"productId": "", "name": "X", "category": "Burgers", "price": 5}]`},
		{"duplicate ids", `[
			{"productId": "FF001", "name": "X", "category": "Burgers", "price": 5},
			{"productId": "FF001", "name": "Y", "category": "Pizza", "price": 6}
		]`},
		{"not an array", `{"productId": "FF001"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSeedFile(t, tt.content)
			_, err := LoadSeedFile(path)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeSeedValidationFailed, errors.CodeOf(err))
		})
	}
}

func TestLoadSeedFile_MissingFile(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.NotEqual(t, errors.ErrCodeSeedValidationFailed, errors.CodeOf(err))
}
