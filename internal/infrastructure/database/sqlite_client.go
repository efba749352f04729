package database

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens the local lead store. ":memory:" gives a throwaway
// database, used by tests and the CLI.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps :memory: databases alive across calls and
	// serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Printf("[database][sqlite] opened path=%s", path)
	return db, nil
}
