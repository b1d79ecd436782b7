// Package sqldb keeps grid settings in a database/sql table shared by the
// duck and lite stores.
package sqldb

import (
	"database/sql"

	"github.com/pkg/errors"

	nt "colman/entity"
)

const schema = `
	CREATE TABLE IF NOT EXISTS grid_settings (
		grid_key VARCHAR NOT NULL,
		position INTEGER NOT NULL,
		column_id VARCHAR NOT NULL,
		visible BOOLEAN NOT NULL,
		width VARCHAR NOT NULL,
		header VARCHAR NOT NULL
	)`

// CreateTable creates the settings table if need be.
func CreateTable(db *sql.DB) (err error) {

	_, err = db.Exec(schema)
	err = errors.Wrapf(err, "failed to create settings table")
	return
}

// Load reads the columns saved under key in position order.
// Found is false when the key has no rows.
func Load(db *sql.DB, key string) (columns []nt.Column, found bool, err error) {

	rows, err := db.Query(`
		SELECT column_id, visible, width, header
		FROM grid_settings
		WHERE grid_key = ?
		ORDER BY position
	`, key)
	if err != nil {
		err = errors.Wrapf(err, "failed to query settings for %s", key)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var col nt.Column
		err = rows.Scan(&col.Id, &col.Visible, &col.Width, &col.Header)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan settings for %s", key)
			return
		}
		columns = append(columns, col)
	}

	err = rows.Err()
	if err != nil {
		err = errors.Wrapf(err, "error iterating settings for %s", key)
		return
	}

	found = len(columns) > 0
	return
}

// Save replaces the rows for key with columns in one transaction.
func Save(db *sql.DB, key string, columns []nt.Column) (err error) {

	tx, err := db.Begin()
	if err != nil {
		err = errors.Wrapf(err, "failed to begin saving %s", key)
		return
	}
	defer func() {
		if err != nil {
			tx.Rollback() //nolint:errcheck
		}
	}()

	_, err = tx.Exec("DELETE FROM grid_settings WHERE grid_key = ?", key)
	if err != nil {
		err = errors.Wrapf(err, "failed to clear settings for %s", key)
		return
	}

	stmt, err := tx.Prepare(`
		INSERT INTO grid_settings (grid_key, position, column_id, visible, width, header)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		err = errors.Wrapf(err, "failed to prepare insert")
		return
	}
	defer stmt.Close()

	for i, col := range columns {
		_, err = stmt.Exec(key, i, col.Id, col.Visible, col.Width, col.Header)
		if err != nil {
			err = errors.Wrapf(err, "failed to insert %s for %s", col.Id, key)
			return
		}
	}

	err = tx.Commit()
	err = errors.Wrapf(err, "failed to commit settings for %s", key)
	return
}
