package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"discurso-archive/pkg/db"
	"discurso-archive/pkg/replication"
)

// Mirrors the CSV speech archive into Postgres, either a plain instance
// (-dsn) or a Supabase project (SUPABASE_* environment variables).
func main() {
	var (
		csvPath = flag.String("csv", "data/discursos_milei.csv", "Archive CSV path to mirror")
		dsn     = flag.String("dsn", "", "Postgres DSN (overrides Supabase settings)")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf(".env file not loaded: %v (using environment variables only)", err)
	}

	ctx := context.Background()

	provider, closeFn, err := connect(ctx, *dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeFn()

	replicator, err := replication.NewReplicator(replication.Config{
		CSVPath:  *csvPath,
		Postgres: provider,
	})
	if err != nil {
		log.Fatalf("Failed to configure replicator: %v", err)
	}

	start := time.Now()
	if err := replicator.Replicate(ctx); err != nil {
		log.Fatalf("Replication failed: %v", err)
	}
	log.Printf("Done. Duration: %s", time.Since(start))
}

// connect picks a target: an explicit DSN wins, otherwise Supabase
// credentials from the environment.
func connect(ctx context.Context, dsn string) (db.DBProvider, func() error, error) {
	if dsn != "" {
		client := db.NewPostgresClient(db.PostgresConfig{DSN: dsn})
		if err := client.Connect(ctx); err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	}

	client := db.NewSupabaseClient(db.SupabaseConfig{
		ConnectionString: os.Getenv("SUPABASE_CONNECTION_STRING"),
		SupabaseURL:      os.Getenv("SUPABASE_URL"),
		SupabaseKey:      os.Getenv("SUPABASE_KEY"),
		Password:         os.Getenv("SUPABASE_DB_PASSWORD"),
	})
	if err := client.Connect(ctx); err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}
