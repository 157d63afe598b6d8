// Package catalog persists run history and unclassified tags to a
// SQLite database so past cleanups can be reviewed and the tag tables
// curated.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mhoutman/romsort/pkg/models"
)

// Store is a SQLite-backed run catalog.
type Store struct {
	db *sql.DB
}

// Run is one recorded cleanup run.
type Run struct {
	ID         string
	Root       string
	CreatedAt  time.Time
	DryRun     bool
	Status     string
	Steps      []string
	Entries    int
	Groups     int
	Moved      int
	Kept       int
	Errored    int
	DurationMs int64

	// ByDestination and ByRegion restore the plan statistics.
	ByDestination map[string]int
	ByRegion      map[string]int
}

// UnknownTag is one accumulated unclassified tag.
type UnknownTag struct {
	Tag      string
	Count    int
	LastSeen time.Time
}

// Open opens or creates the catalog database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create catalog dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		root        TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		dry_run     INTEGER NOT NULL DEFAULT 0,
		status      TEXT NOT NULL,
		steps       TEXT NOT NULL,
		entries     INTEGER NOT NULL,
		groups_n    INTEGER NOT NULL,
		moved       INTEGER NOT NULL,
		kept        INTEGER NOT NULL,
		errored     INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		stats       TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

	CREATE TABLE IF NOT EXISTS unknown_tags (
		tag       TEXT PRIMARY KEY,
		count     INTEGER NOT NULL DEFAULT 0,
		last_seen TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// statsBlob is the JSON persisted in the stats column.
type statsBlob struct {
	ByDestination map[string]int `json:"by_destination"`
	ByRegion      map[string]int `json:"by_region"`
}

// RecordRun stores one execution report and accumulates the plan's
// unknown tags.
func (s *Store) RecordRun(ctx context.Context, report *models.Report) error {
	p := report.Plan

	byDest := make(map[string]int, len(p.Stats.ByDestination))
	for k, v := range p.Stats.ByDestination {
		byDest[string(k)] = v
	}
	blob, err := json.Marshal(statsBlob{ByDestination: byDest, ByRegion: p.Stats.ByRegion})
	if err != nil {
		return fmt.Errorf("marshal run stats: %w", err)
	}

	steps := make([]string, len(p.Steps))
	for i, st := range p.Steps {
		steps[i] = string(st)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, root, created_at, dry_run, status, steps,
			entries, groups_n, moved, kept, errored, duration_ms, stats)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Root, p.CreatedAt.UTC().Format(time.RFC3339), boolInt(report.DryRun),
		string(report.Status), strings.Join(steps, ","),
		p.Stats.Entries, p.Stats.Groups, report.Stats.Moved, report.Stats.Kept,
		report.Stats.Errored, report.Duration.Milliseconds(), string(blob))
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	return s.recordUnknownTags(ctx, p.UnknownTags)
}

func (s *Store) recordUnknownTags(ctx context.Context, tags []string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	for _, tag := range tags {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO unknown_tags (tag, count, last_seen) VALUES (?, 1, ?)
			ON CONFLICT(tag) DO UPDATE SET count = count + 1, last_seen = excluded.last_seen`,
			tag, now)
		if err != nil {
			return fmt.Errorf("record unknown tag %q: %w", tag, err)
		}
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, root, created_at, dry_run, status, steps,
			entries, groups_n, moved, kept, errored, duration_ms, stats
		FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun returns one run by ID, or an ID prefix when unambiguous.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, root, created_at, dry_run, status, steps,
			entries, groups_n, moved, kept, errored, duration_ms, stats
		FROM runs WHERE id = ? OR id LIKE ? LIMIT 2`, id, id+"%")
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(runs) {
	case 0:
		return nil, fmt.Errorf("run %s not found", id)
	case 1:
		return &runs[0], nil
	default:
		return nil, fmt.Errorf("run prefix %s is ambiguous", id)
	}
}

// UnknownTags returns the accumulated unclassified tags, most frequent
// first.
func (s *Store) UnknownTags(ctx context.Context) ([]UnknownTag, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT tag, count, last_seen FROM unknown_tags
		ORDER BY count DESC, tag ASC`)
	if err != nil {
		return nil, fmt.Errorf("list unknown tags: %w", err)
	}
	defer rows.Close()

	var tags []UnknownTag
	for rows.Next() {
		var t UnknownTag
		var seen string
		if err := rows.Scan(&t.Tag, &t.Count, &seen); err != nil {
			return nil, err
		}
		t.LastSeen, _ = time.Parse(time.RFC3339, seen)
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func scanRun(rows *sql.Rows) (Run, error) {
	var r Run
	var created, steps string
	var dryRun int
	var stats sql.NullString
	if err := rows.Scan(&r.ID, &r.Root, &created, &dryRun, &r.Status, &steps,
		&r.Entries, &r.Groups, &r.Moved, &r.Kept, &r.Errored, &r.DurationMs, &stats); err != nil {
		return Run{}, err
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339, created)
	r.DryRun = dryRun != 0
	if steps != "" {
		r.Steps = strings.Split(steps, ",")
	}
	if stats.Valid {
		var blob statsBlob
		if err := json.Unmarshal([]byte(stats.String), &blob); err == nil {
			r.ByDestination = blob.ByDestination
			r.ByRegion = blob.ByRegion
		}
	}
	return r, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
