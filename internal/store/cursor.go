package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// MaxHeight returns the scan cursor: the highest height for which all
// income records are durable. The second return is false when no height
// has been committed yet.
func (s *Store) MaxHeight(ctx context.Context) (height uint64, ok bool, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("max_height", err, started)
	}()

	row := s.db.QueryRowContext(ctx, `SELECT max_height FROM scan_cursor WHERE id = 1`)
	if err = row.Scan(&height); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		err = fmt.Errorf("scan cursor height: %w", err)
		return 0, false, err
	}
	return height, true, nil
}

// CommitHeight advances the scan cursor to height. The cursor never
// decreases: committing a height at or below the current cursor is a no-op.
// Callers must have inserted all records for the height first.
func (s *Store) CommitHeight(ctx context.Context, height uint64) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("commit_height", err, started)
	}()

	const query = `
INSERT INTO scan_cursor (id, max_height) VALUES (1, ?)
ON CONFLICT (id) DO UPDATE SET max_height = max(max_height, excluded.max_height)`

	if _, err = s.db.ExecContext(ctx, query, height); err != nil {
		err = fmt.Errorf("commit height %d: %w", height, err)
		return err
	}
	return nil
}
