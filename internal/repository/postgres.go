package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Tanvi150423/voguefit/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// PostgresRepository handles database operations: extra curated trends and
// search analytics. The whole layer is optional; callers hold nil when no
// DSN is configured.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// trendRow mirrors one row of the trends table
type trendRow struct {
	TrendID      string          `db:"trend_id"`
	TrendName    string          `db:"trend_name"`
	Description  string          `db:"description"`
	Source       string          `db:"source"`
	SourcesCount int             `db:"sources_count"`
	Category     string          `db:"category"`
	Season       string          `db:"season"`
	Keywords     pq.StringArray  `db:"keywords"`
	CreatedAt    time.Time       `db:"created_at"`
	ExpiresAt    time.Time       `db:"expires_at"`
	Embedding    pgvector.Vector `db:"embedding"`
}

// LoadTrends fetches database-managed trends for the in-memory store.
// Confidence is not stored; the store recomputes it at initialization.
func (r *PostgresRepository) LoadTrends(ctx context.Context) ([]model.Trend, error) {
	query := `
		SELECT trend_id, trend_name, description, source, sources_count,
			category, season, keywords, created_at, expires_at, embedding
		FROM trends
		ORDER BY trend_id
	`
	var rows []trendRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load trends: %w", err)
	}

	trends := make([]model.Trend, 0, len(rows))
	for _, row := range rows {
		trends = append(trends, model.Trend{
			TrendID:      row.TrendID,
			TrendName:    row.TrendName,
			Description:  row.Description,
			Source:       row.Source,
			SourcesCount: row.SourcesCount,
			Category:     row.Category,
			Season:       row.Season,
			Keywords:     row.Keywords,
			CreatedAt:    row.CreatedAt,
			ExpiresAt:    row.ExpiresAt,
			Embedding:    toFloat64(row.Embedding.Slice()),
		})
	}
	return trends, nil
}

// LogSearch records one completed search. Called from a goroutine by the
// service layer; failures are logged, never surfaced.
func (r *PostgresRepository) LogSearch(entry model.SearchLogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry.SearchID = uuid.New().String()
	query := `
		INSERT INTO search_logs (search_id, user_id, query, platform, result_count, took_ms)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.SearchID, entry.UserID, entry.Query, entry.Platform, entry.ResultCount, entry.TookMs)
	if err != nil {
		log.Printf("[Repository] Failed to log search %s: %v", entry.SearchID, err)
	}
}

func toFloat64(v []float32) []float64 {
	if len(v) == 0 {
		return nil
	}
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
