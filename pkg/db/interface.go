package db

import "database/sql"

// DBProvider is an interface for database clients that provide access to a
// sql.DB handle. Both PostgresClient and SupabaseClient satisfy it, so the
// replication mirror can target either.
type DBProvider interface {
	DB() *sql.DB
}
