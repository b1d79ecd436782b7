// Package lite stores grid settings in a SQLite database.
package lite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	nt "colman/entity"
	"colman/store/sqldb"
)

const memory = ":memory:"

// Lite keeps the settings of every grid in one database file.
type Lite struct {
	db     *sql.DB
	logger nt.Logger
}

// New opens the database at path, creating its folder if need be.
// An empty path opens a private in-memory database.
func New(path string, lgr nt.Logger) (lt *Lite, err error) {

	if lgr == nil {
		lgr = nt.Discard{}
	}
	if path == "" {
		path = memory
	}

	if path != memory {
		err = os.MkdirAll(filepath.Dir(path), 0755)
		if err != nil {
			err = errors.Wrapf(err, "failed to create folder for %s", path)
			return
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open sqlite at %s", path)
		return
	}
	// one writer, and one shared in-memory database
	db.SetMaxOpenConns(1)

	err = db.Ping()
	if err != nil {
		db.Close()
		err = errors.Wrapf(err, "failed to connect to sqlite at %s", path)
		return
	}

	err = sqldb.CreateTable(db)
	if err != nil {
		db.Close()
		return
	}

	lgr.Info(context.Background(), "opened settings database", "path", path)

	lt = &Lite{
		db:     db,
		logger: lgr,
	}
	return
}

func (lt *Lite) Close() {
	lt.db.Close()
}

// Load reads the columns saved under key.
func (lt *Lite) Load(key string) (columns []nt.Column, found bool, err error) {
	return sqldb.Load(lt.db, key)
}

// Save replaces the columns saved under key.
func (lt *Lite) Save(key string, columns []nt.Column) (err error) {
	return sqldb.Save(lt.db, key, columns)
}
