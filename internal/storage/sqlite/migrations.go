package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure the table exists. Snapshots are stored
// whole under namespaced keys, so one table is all the schema there is.
const schema = `
CREATE TABLE IF NOT EXISTS pos_kv (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
