// internal/store/store.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/aaronwald/adrank/internal/ranking"
)

// identPattern restricts table names to plain SQL identifiers, since the
// table name is interpolated into query text.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Store archives computed rankings in Postgres.
type Store struct {
	db    *sql.DB
	table string
}

// NewStore creates a ranking store writing to the given table.
func NewStore(db *sql.DB, table string) (*Store, error) {
	if !identPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name: %q", table)
	}
	return &Store{db: db, table: table}, nil
}

// EnsureSchema creates the ranking table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			ad_archive_id    TEXT PRIMARY KEY,
			page_name        TEXT,
			rank             INTEGER NOT NULL,
			start_time       TIMESTAMPTZ NOT NULL,
			end_time         TIMESTAMPTZ NOT NULL,
			duration_seconds DOUBLE PRECISION NOT NULL,
			ranked_at        TIMESTAMPTZ NOT NULL
		)
	`, s.table)
	_, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveRanking upserts one row per ranked entry, keyed on the ad archive id.
// Entries without an archive id are skipped. Returns the number of rows
// written.
func (s *Store) SaveRanking(ctx context.Context, entries []ranking.Entry, rankedAt time.Time) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (ad_archive_id, page_name, rank, start_time, end_time, duration_seconds, ranked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (ad_archive_id) DO UPDATE SET
			page_name = EXCLUDED.page_name,
			rank = EXCLUDED.rank,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			duration_seconds = EXCLUDED.duration_seconds,
			ranked_at = EXCLUDED.ranked_at
	`, s.table)

	saved := 0
	for i, e := range entries {
		if e.ArchiveID == "" {
			continue
		}
		_, err := s.db.ExecContext(ctx, query,
			e.ArchiveID, e.PageName, i+1, e.Start, e.End, e.DurationSeconds, rankedAt)
		if err != nil {
			return saved, fmt.Errorf("failed to save ranking for %s: %w", e.ArchiveID, err)
		}
		saved++
	}
	return saved, nil
}
