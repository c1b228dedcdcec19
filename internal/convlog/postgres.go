// internal/convlog/postgres.go
package convlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"foodiebot/internal/models"
)

// PostgresStore appends turn records to the conversations table. Signals and
// recommendations are stored as JSON columns so the row stays self-contained
// for offline analysis.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const insertTurn = `
	INSERT INTO conversations (
		conversation_id, turn_index, created_at, utterance, bot_response,
		interest_score, relaxed_filters, signals, recommendations
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (s *PostgresStore) Append(ctx context.Context, record models.TurnRecord) error {
	signals, err := json.Marshal(record.Signals)
	if err != nil {
		return fmt.Errorf("marshal signals: %w", err)
	}

	recs := make([]recommendationRow, 0, len(record.Recommendations))
	for _, r := range record.Recommendations {
		recs = append(recs, recommendationRow{
			ProductID:  r.Product.ID,
			Name:       r.Product.Name,
			MatchScore: r.MatchScore,
			Rank:       r.Rank,
		})
	}
	recommendations, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}

	_, err = s.db.ExecContext(ctx, insertTurn,
		record.ConversationID, record.TurnIndex, record.Timestamp,
		record.Utterance, record.BotResponse, record.Score,
		record.RelaxedFilters, signals, recommendations,
	)
	if err != nil {
		return fmt.Errorf("insert turn record: %w", err)
	}
	return nil
}

// recommendationRow is the compact per-product shape persisted with a turn.
// Full product rows already live in the products table.
type recommendationRow struct {
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	MatchScore float64 `json:"matchScore"`
	Rank       int     `json:"rank"`
}
