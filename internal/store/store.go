// Package store persists candidate profiles and saved job matches in a local
// SQLite database. Profiles and jobs are stored as opaque JSON blobs so the
// schema does not chase the Go types.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"

	"github.com/spigell/jobscout/internal/job"
	"github.com/spigell/jobscout/internal/profile"
	"github.com/spigell/jobscout/internal/recommend"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	data TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS saved_jobs (
	id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
	job_id TEXT NOT NULL,
	job TEXT NOT NULL,
	match_score REAL NOT NULL,
	saved_at TIMESTAMP NOT NULL,
	UNIQUE(profile_id, job_id)
);
`

// Store wraps a SQLite database holding profiles and saved matches.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (and creates if missing) the database at path.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite benefits from a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	log.Debug("opened store", zap.String("path", path))

	return &Store{db: db, logger: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveProfile inserts the profile under name, or merges it into the existing
// record when one is already stored under that name. Fields left empty in the
// update keep their stored values.
func (s *Store) SaveProfile(ctx context.Context, name string, p profile.Profile) (profile.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return profile.Profile{}, errors.New("profile name is required")
	}

	existing, err := s.GetProfile(ctx, name)
	switch {
	case err == nil:
		p = profile.Merge(existing, p)
	case errors.Is(err, ErrNotFound):
	default:
		return profile.Profile{}, err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("encode profile: %w", err)
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO profiles (id, name, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, uuid.NewString(), name, string(data), now, now); err != nil {
		return profile.Profile{}, fmt.Errorf("save profile: %w", err)
	}

	s.logger.Info("saved profile", zap.String("name", name))

	return p, nil
}

// GetProfile loads the profile stored under name.
func (s *Store) GetProfile(ctx context.Context, name string) (profile.Profile, error) {
	var data string
	row := s.db.QueryRowContext(ctx, "SELECT data FROM profiles WHERE name = ?", name)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profile.Profile{}, fmt.Errorf("profile %q: %w", name, ErrNotFound)
		}
		return profile.Profile{}, fmt.Errorf("load profile: %w", err)
	}

	var p profile.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return profile.Profile{}, fmt.Errorf("decode profile: %w", err)
	}

	return p, nil
}

// ListProfiles returns the stored profile names, newest first.
func (s *Store) ListProfiles(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM profiles ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan profile name: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// DeleteProfile removes the profile and its saved jobs.
func (s *Store) DeleteProfile(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM profiles WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("profile %q: %w", name, ErrNotFound)
	}

	return nil
}

// SavedJob is a job listing remembered for a profile together with the score
// it matched at.
type SavedJob struct {
	Job        *job.Listing `json:"job"`
	MatchScore float64      `json:"match_score"`
	SavedAt    time.Time    `json:"saved_at"`
}

// SaveMatch records a match for the named profile. Saving the same job again
// updates its score.
func (s *Store) SaveMatch(ctx context.Context, profileName string, match *recommend.Match) error {
	if match == nil || match.Job == nil {
		return errors.New("match with a job listing is required")
	}

	profileID, err := s.profileID(ctx, profileName)
	if err != nil {
		return err
	}

	data, err := json.Marshal(match.Job)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}

	query := `
		INSERT INTO saved_jobs (id, profile_id, job_id, job, match_score, saved_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(profile_id, job_id) DO UPDATE SET job = excluded.job, match_score = excluded.match_score, saved_at = excluded.saved_at
	`
	now := time.Now().UTC()
	if _, err := s.db.ExecContext(ctx, query, uuid.NewString(), profileID, match.Job.ID, string(data), match.Score, now); err != nil {
		return fmt.Errorf("save match: %w", err)
	}

	s.logger.Info("saved job match",
		zap.String("profile", profileName),
		zap.String("job_id", match.Job.ID),
		zap.Float64("match_score", match.Score),
	)

	return nil
}

// SavedJobs returns the jobs saved for the named profile, best score first.
func (s *Store) SavedJobs(ctx context.Context, profileName string) ([]*SavedJob, error) {
	profileID, err := s.profileID(ctx, profileName)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT job, match_score, saved_at FROM saved_jobs WHERE profile_id = ? ORDER BY match_score DESC",
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}
	defer rows.Close()

	var saved []*SavedJob
	for rows.Next() {
		var (
			data    string
			score   float64
			savedAt time.Time
		)
		if err := rows.Scan(&data, &score, &savedAt); err != nil {
			return nil, fmt.Errorf("scan saved job: %w", err)
		}

		var listing job.Listing
		if err := json.Unmarshal([]byte(data), &listing); err != nil {
			return nil, fmt.Errorf("decode saved job: %w", err)
		}

		saved = append(saved, &SavedJob{Job: &listing, MatchScore: score, SavedAt: savedAt})
	}

	return saved, rows.Err()
}

func (s *Store) profileID(ctx context.Context, name string) (string, error) {
	var id string
	row := s.db.QueryRowContext(ctx, "SELECT id FROM profiles WHERE name = ?", name)
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("profile %q: %w", name, ErrNotFound)
		}
		return "", fmt.Errorf("load profile id: %w", err)
	}

	return id, nil
}
