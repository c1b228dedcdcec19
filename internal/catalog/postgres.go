// internal/catalog/postgres.go
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"foodiebot/internal/models"
)

// PostgresStore reads the product catalog from the products table. Tag and
// allergen columns are stored as JSON arrays, mirroring the seeder's writes.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const selectProducts = `
	SELECT product_id, name, category, description, ingredients, price,
	       calories, prep_time, dietary_tags, mood_tags, allergens,
	       popularity_score, chef_special, limited_time, spice_level
	FROM products
	ORDER BY product_id`

func (s *PostgresStore) Products(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, selectProducts)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var ingredients, dietary, mood, allergens []byte
		err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &p.Description, &ingredients, &p.Price,
			&p.Calories, &p.PrepTime, &dietary, &mood, &allergens,
			&p.PopularityScore, &p.ChefSpecial, &p.LimitedTime, &p.SpiceLevel,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if err := json.Unmarshal(ingredients, &p.Ingredients); err != nil {
			p.Ingredients = nil
		}
		if err := json.Unmarshal(dietary, &p.DietaryTags); err != nil {
			p.DietaryTags = nil
		}
		if err := json.Unmarshal(mood, &p.MoodTags); err != nil {
			p.MoodTags = nil
		}
		if err := json.Unmarshal(allergens, &p.Allergens); err != nil {
			p.Allergens = nil
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

const insertProduct = `
	INSERT INTO products (
		product_id, name, category, description, ingredients, price,
		calories, prep_time, dietary_tags, mood_tags, allergens,
		popularity_score, chef_special, limited_time, spice_level
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	ON CONFLICT (product_id) DO UPDATE SET
		name = EXCLUDED.name,
		category = EXCLUDED.category,
		description = EXCLUDED.description,
		ingredients = EXCLUDED.ingredients,
		price = EXCLUDED.price,
		calories = EXCLUDED.calories,
		prep_time = EXCLUDED.prep_time,
		dietary_tags = EXCLUDED.dietary_tags,
		mood_tags = EXCLUDED.mood_tags,
		allergens = EXCLUDED.allergens,
		popularity_score = EXCLUDED.popularity_score,
		chef_special = EXCLUDED.chef_special,
		limited_time = EXCLUDED.limited_time,
		spice_level = EXCLUDED.spice_level`

// InsertProducts upserts the given products in one transaction. Used by the
// catalog-seeder tool only; the engine never writes the catalog.
func (s *PostgresStore) InsertProducts(ctx context.Context, products []models.Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, p := range products {
		ingredients, _ := json.Marshal(p.Ingredients)
		dietary, _ := json.Marshal(p.DietaryTags)
		mood, _ := json.Marshal(p.MoodTags)
		allergens, _ := json.Marshal(p.Allergens)

		_, err := tx.ExecContext(ctx, insertProduct,
			p.ID, p.Name, p.Category, p.Description, ingredients, p.Price,
			p.Calories, p.PrepTime, dietary, mood, allergens,
			p.PopularityScore, p.ChefSpecial, p.LimitedTime, p.SpiceLevel,
		)
		if err != nil {
			return fmt.Errorf("insert product %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
