package duck

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	nt "colman/entity"
	"colman/store/sqldb"
)

const rowsTable = "grid_rows"

// Duck keeps grid settings, and optionally a grid's rows, in DuckDB.
type Duck struct {
	db     *sql.DB
	logger nt.Logger
	fields []nt.Field
}

// New opens the database at path, in memory when path is empty.
func New(path string, lgr nt.Logger) (dk *Duck, err error) {

	if lgr == nil {
		lgr = nt.Discard{}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open duck at %q", path)
		return
	}

	err = sqldb.CreateTable(db)
	if err != nil {
		db.Close()
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}
	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Load reads the columns saved under key.
func (dk *Duck) Load(key string) (columns []nt.Column, found bool, err error) {
	return sqldb.Load(dk.db, key)
}

// Save replaces the columns saved under key.
func (dk *Duck) Save(key string, columns []nt.Column) (err error) {
	return sqldb.Save(dk.db, key, columns)
}

// LoadRows replaces the row table with rows described by fields.
// Field types are duck types such as VARCHAR, BIGINT or DOUBLE.
func (dk *Duck) LoadRows(fields []nt.Field, rows [][]any) (err error) {

	if len(fields) == 0 {
		err = errors.New("no fields to load")
		return
	}

	defs := make([]string, len(fields))
	names := make([]string, len(fields))
	marks := make([]string, len(fields))
	for i, field := range fields {
		defs[i] = fmt.Sprintf("%s %s", quote(field.Name), field.Type)
		names[i] = quote(field.Name)
		marks[i] = "?"
	}

	tx, err := dk.db.Begin()
	if err != nil {
		err = errors.Wrapf(err, "failed to begin loading rows")
		return
	}
	defer func() {
		if err != nil {
			tx.Rollback() //nolint:errcheck
		}
	}()

	_, err = tx.Exec(fmt.Sprintf("CREATE OR REPLACE TABLE %s (%s)", rowsTable, strings.Join(defs, ", ")))
	if err != nil {
		err = errors.Wrapf(err, "failed to create table")
		return
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		rowsTable, strings.Join(names, ", "), strings.Join(marks, ", "))

	for i, row := range rows {
		if len(row) != len(fields) {
			err = errors.Errorf("row %d has %d values, want %d", i, len(row), len(fields))
			return
		}
		_, err = tx.Exec(insert, row...)
		if err != nil {
			err = errors.Wrapf(err, "failed to insert row %d", i)
			return
		}
	}

	err = tx.Commit()
	if err != nil {
		err = errors.Wrapf(err, "failed to commit rows")
		return
	}

	dk.fields = fields
	dk.logger.Info(context.Background(), "loaded rows", "count", len(rows), "fields", len(fields))
	return
}

// Fields returns the fields of the loaded rows.
func (dk *Duck) Fields() []nt.Field {
	return dk.fields
}

// Count returns the number of loaded rows.
func (dk *Duck) Count() (count int, err error) {

	err = dk.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", rowsTable)).Scan(&count)
	err = errors.Wrapf(err, "failed to count rows")
	return
}

// GetPage of rows in load order.
func (dk *Duck) GetPage(offset, size int) (lines []nt.Line, err error) {

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY rowid LIMIT %d OFFSET %d", rowsTable, size, offset)

	rows, err := dk.db.Query(query)
	if err != nil {
		err = errors.Wrapf(err, "failed to query rows")
		return
	}
	defer rows.Close()

	count, err := columnCount(rows)
	if err != nil {
		return
	}

	for rows.Next() {
		var vals []any
		vals, err = scanRow(rows, count)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		values := make([]nt.Value, count)
		for i, val := range vals {
			values[i] = nt.Value{Raw: val}
		}

		// first field identifies the row
		lines = append(lines, nt.Line{
			Id:     values[0].String(),
			Values: values,
		})
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// unexported

func columnCount(rows *sql.Rows) (int, error) {
	cols, err := rows.Columns()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to get cols from query rows")
	}
	return len(cols), nil
}

func scanRow(rows *sql.Rows, columnCount int) ([]any, error) {
	vals := make([]any, columnCount)
	ptrs := make([]any, columnCount)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	err := rows.Scan(ptrs...)
	return vals, err
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
