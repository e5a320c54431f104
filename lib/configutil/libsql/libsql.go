package configlibsql

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

type Struct struct {
	File string `json:"file"`
	Url  string `json:"url"`
}

// OpenDB opens the configured database and applies the given schema.
// A remote libsql url takes precedence over a local sqlite file.
func (config Struct) OpenDB(schema string) (*sql.DB, error) {
	if config.Url != "" {
		db, err := sql.Open("libsql", config.Url)
		if err != nil {
			return nil, err
		}
		return db, applySchema(db, schema)
	}

	if config.File == "" {
		return nil, fmt.Errorf("a database path was not specified")
	}

	_, statErr := os.Stat(config.File)
	if os.IsNotExist(statErr) {
		f, err := os.Create(config.File)
		if err != nil {
			return nil, err
		}
		f.Close()
	}

	db, err := sql.Open("sqlite", config.File)
	if err != nil {
		return nil, err
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	_, err = db.Exec("PRAGMA foreign_keys=ON")
	if err != nil {
		return nil, err
	}

	return db, applySchema(db, schema)
}

func applySchema(db *sql.DB, schema string) error {
	if schema == "" {
		return nil
	}
	_, err := db.Exec(schema)
	return err
}
