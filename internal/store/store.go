// Package store provides PostgreSQL persistence for extraction records.
// Persistence is optional: the pipeline itself never touches the store, the
// server only writes records when a DATABASE_URL is configured.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/podume/resume-extractor/internal/types"
)

// ErrNotFound is returned when an extraction record does not exist.
var ErrNotFound = errors.New("extraction record not found")

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Record is one persisted extraction result.
type Record struct {
	ID           uuid.UUID               `json:"id"`
	Filename     string                  `json:"filename,omitempty"`
	DetectedType types.DetectedFileType  `json:"detected_type"`
	Result       *types.ExtractionResult `json:"result"`
	CreatedAt    time.Time               `json:"created_at"`
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the extractions table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS extractions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			filename TEXT NOT NULL DEFAULT '',
			detected_type TEXT NOT NULL,
			page_count INT NOT NULL,
			extraction_method TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			flat_text TEXT NOT NULL,
			structured JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure extractions schema: %w", err)
	}
	return nil
}

// SaveExtraction persists an extraction result and returns its record ID.
// The structured resume is stored as JSONB alongside the flat text so
// downstream consumers can query either form.
func (s *Store) SaveExtraction(ctx context.Context, filename string, detectedType types.DetectedFileType, result *types.ExtractionResult) (uuid.UUID, error) {
	structuredJSON, err := json.Marshal(result.Structured)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal structured resume: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO extractions (filename, detected_type, page_count, extraction_method, confidence, flat_text, structured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		filename,
		string(detectedType),
		result.Metadata.PageCount,
		string(result.Metadata.ExtractionMethod),
		result.Metadata.Confidence,
		result.FlatText,
		structuredJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save extraction: %w", err)
	}
	return id, nil
}

// GetExtraction loads one extraction record by ID.
func (s *Store) GetExtraction(ctx context.Context, id uuid.UUID) (*Record, error) {
	var (
		record         Record
		detectedType   string
		method         string
		structuredJSON []byte
		result         types.ExtractionResult
	)

	err := s.pool.QueryRow(ctx,
		`SELECT id, filename, detected_type, page_count, extraction_method, confidence, flat_text, structured, created_at
		 FROM extractions WHERE id = $1`,
		id,
	).Scan(
		&record.ID,
		&record.Filename,
		&detectedType,
		&result.Metadata.PageCount,
		&method,
		&result.Metadata.Confidence,
		&result.FlatText,
		&structuredJSON,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load extraction: %w", err)
	}

	result.Metadata.ExtractionMethod = types.ExtractionMethod(method)
	if err := json.Unmarshal(structuredJSON, &result.Structured); err != nil {
		return nil, fmt.Errorf("failed to unmarshal structured resume: %w", err)
	}

	record.DetectedType = types.DetectedFileType(detectedType)
	record.Result = &result
	return &record, nil
}

// ListRecent returns the most recent extraction records, newest first,
// without their flat text (which can be large).
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, filename, detected_type, confidence, created_at
		 FROM extractions ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list extractions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			record       Record
			detectedType string
			confidence   float64
		)
		if err := rows.Scan(&record.ID, &record.Filename, &detectedType, &confidence, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan extraction row: %w", err)
		}
		record.DetectedType = types.DetectedFileType(detectedType)
		record.Result = &types.ExtractionResult{
			Metadata: types.ExtractionMetadata{Confidence: confidence},
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate extraction rows: %w", err)
	}
	return records, nil
}
