package repositories

import (
	"database/sql"
	"fmt"

	"github.com/init-js/playlist-dl/internal/models"
	"github.com/init-js/playlist-dl/internal/shared"
)

// RunRepository persists [models.SyncRun] rows.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new RunRepository with the given database connection
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a new sync run with a generated ID.
func (r *RunRepository) Create(run *models.SyncRun) error {
	run.ID = shared.GenerateID()

	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO sync_runs (id, playlist, status, entries, files_scanned, files_tagged, files_skipped, error, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		run.ID,
		run.Playlist,
		string(run.Status),
		run.Entries,
		run.FilesScanned,
		run.FilesTagged,
		run.FilesSkipped,
		run.Error,
		run.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sync run: %w", err)
	}

	return nil
}

// Finish updates the counters and outcome of an existing run.
func (r *RunRepository) Finish(run *models.SyncRun) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE sync_runs
		SET status = ?, entries = ?, files_scanned = ?, files_tagged = ?, files_skipped = ?, error = ?, finished_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		string(run.Status),
		run.Entries,
		run.FilesScanned,
		run.FilesTagged,
		run.FilesSkipped,
		run.Error,
		run.FinishedAt,
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update sync run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("sync run not found: %s", run.ID)
	}

	return nil
}

// List retrieves recent sync runs, most recent first.
//
// Supported criteria: "playlist" (string) filters by playlist name and
// "limit" (int) caps the row count.
func (r *RunRepository) List(criteria map[string]any) ([]*models.SyncRun, error) {
	query := `
		SELECT id, playlist, status, entries, files_scanned, files_tagged, files_skipped, error, started_at, finished_at
		FROM sync_runs
	`

	args := []any{}

	if playlist, ok := criteria["playlist"].(string); ok && playlist != "" {
		query += " WHERE playlist = ?"
		args = append(args, playlist)
	}

	query += " ORDER BY started_at DESC"

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.SyncRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return runs, nil
}

// scanRun scans a row from [sql.Rows] into a [models.SyncRun]
func scanRun(rows *sql.Rows) (*models.SyncRun, error) {
	var (
		run        models.SyncRun
		status     string
		errText    sql.NullString
		finishedAt sql.NullTime
	)

	err := rows.Scan(
		&run.ID,
		&run.Playlist,
		&status,
		&run.Entries,
		&run.FilesScanned,
		&run.FilesTagged,
		&run.FilesSkipped,
		&errText,
		&run.StartedAt,
		&finishedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan sync run: %w", err)
	}

	run.Status = models.RunStatus(status)
	if errText.Valid {
		run.Error = errText.String
	}
	if finishedAt.Valid {
		t := finishedAt.Time
		run.FinishedAt = &t
	}

	return &run, nil
}
