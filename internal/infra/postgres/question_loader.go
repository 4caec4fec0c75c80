package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"ethics-quiz-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CatalogLoader loads the question catalog from Postgres, one JSONB row
// per question.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadCatalog(ctx context.Context) ([]domain.Question, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var catalog []domain.Question
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		var question domain.Question
		if err := json.Unmarshal(raw, &question); err != nil {
			return nil, fmt.Errorf("unmarshal question: %w", err)
		}
		catalog = append(catalog, question)
	}
	return catalog, rows.Err()
}

// SeedCatalog upserts the given questions into the catalog table.
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool, questions []domain.Question) error {
	for _, question := range questions {
		raw, err := json.Marshal(question)
		if err != nil {
			return fmt.Errorf("marshal question %s: %w", question.ID, err)
		}
		_, err = pool.Exec(ctx,
			`INSERT INTO questions (id, tier, data) VALUES ($1, $2, $3::jsonb)
			 ON CONFLICT (id) DO UPDATE SET tier=EXCLUDED.tier, data=EXCLUDED.data`,
			question.ID, string(question.Tier), string(raw))
		if err != nil {
			return fmt.Errorf("insert question %s: %w", question.ID, err)
		}
	}
	return nil
}
