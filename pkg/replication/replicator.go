// Package replication mirrors the CSV speech archive into Postgres so the
// dataset can be queried with SQL. The CSV file stays the source of truth;
// the mirror is a one-shot, idempotent copy.
package replication

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"discurso-archive/pkg/db"
	"discurso-archive/pkg/domain"
	"discurso-archive/pkg/store"
)

// insertBatchSize bounds the size of each insert transaction.
const insertBatchSize = 100

// Config wires the replication dependencies.
type Config struct {
	CSVPath  string
	Postgres db.DBProvider
}

// Replicator copies the speech archive into a Postgres `speech` table.
type Replicator struct {
	csvPath string
	pg      db.DBProvider
}

// NewReplicator constructs a replicator.
func NewReplicator(cfg Config) (*Replicator, error) {
	if cfg.CSVPath == "" {
		return nil, fmt.Errorf("archive path is required")
	}
	if cfg.Postgres == nil {
		return nil, fmt.Errorf("postgres client is required")
	}
	return &Replicator{
		csvPath: cfg.CSVPath,
		pg:      cfg.Postgres,
	}, nil
}

// Replicate loads the archive and inserts every speech not yet present in
// Postgres. The permalink is the primary key, so re-running against the
// same archive inserts nothing.
func (r *Replicator) Replicate(ctx context.Context) error {
	if err := r.ensureSpeechSchema(ctx); err != nil {
		return err
	}

	st, err := store.Load(r.csvPath)
	if err != nil {
		return fmt.Errorf("load archive: %w", err)
	}
	speeches := st.Speeches()
	log.Printf("Loaded %d speeches from %s, mirroring in batches...", len(speeches), r.csvPath)

	inserted := 0
	for start := 0; start < len(speeches); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(speeches) {
			end = len(speeches)
		}
		n, err := r.insertBatchTx(ctx, speeches[start:end])
		if err != nil {
			return fmt.Errorf("insert batch [%d:%d]: %w", start, end, err)
		}
		inserted += n
		log.Printf("Progress: processed %d/%d speeches, inserted %d new rows", end, len(speeches), inserted)
	}

	log.Printf("Mirror complete: processed %d speeches, inserted %d new rows", len(speeches), inserted)
	return nil
}

func (r *Replicator) ensureSpeechSchema(ctx context.Context) error {
	if r.pg.DB() == nil {
		return fmt.Errorf("postgres DB not connected")
	}

	// The permalink is the primary key, which also gives us uniqueness.
	const ddl = `
CREATE TABLE IF NOT EXISTS speech (
  url TEXT PRIMARY KEY,
  title TEXT NOT NULL DEFAULT '',
  speech_date TEXT NOT NULL DEFAULT '',
  text TEXT NOT NULL DEFAULT '',
  mirrored_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

	if _, err := r.pg.DB().ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create speech table: %w", err)
	}
	return nil
}

// insertBatchTx inserts a batch of speeches within a transaction and
// returns how many rows were actually inserted.
func (r *Replicator) insertBatchTx(ctx context.Context, batch []domain.Speech) (int, error) {
	tx, err := r.pg.DB().BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insertQuery = `
INSERT INTO speech (url, title, speech_date, text)
VALUES ($1, $2, $3, $4)
ON CONFLICT (url) DO NOTHING`

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, sp := range batch {
		if sp.URL == "" {
			// Rows without a permalink have no stable primary key; they
			// stay CSV-only.
			continue
		}
		res, err := stmt.ExecContext(ctx, sp.URL, sp.Title, sp.Date, sp.Text)
		if err != nil {
			return inserted, fmt.Errorf("insert speech url=%q: %w", sp.URL, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}
