// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// HOW THE ROSTER IS STORED:
// ──────────────────────────
// One table, students, holds one row per student. The roster reads the
// whole table once at startup and then writes every add and delete
// through to it, so the file always matches what the user sees.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this when the package is loaded; we
// never call anything from it directly.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aanand-mishra/students-roster/internal/storage"
	"github.com/aanand-mishra/students-roster/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
type SQLite struct {
	Db *sql.DB
}

// ─────────────────────────────────────────────────────────────────────────────
// New opens the SQLite database at path, creating its parent directory and
// the students table if needed.
//
// TWO KINDS OF KEY:
// ──────────────────
// id is the text identifier the roster assigns (a UUID) and is what every
// lookup and delete uses. seq is an INTEGER PRIMARY KEY AUTOINCREMENT that
// nobody sets by hand; SQLite numbers rows as they arrive, so ORDER BY seq
// returns students in the order they were added.
//
// CREATE TABLE IF NOT EXISTS makes New safe to call on an existing file.
// ─────────────────────────────────────────────────────────────────────────────
func New(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite.New: create dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// One connection, so ":memory:" databases are shared across calls.
	db.SetMaxOpenConns(1)

	// seq preserves insertion order; id is the owner-assigned identifier.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			seq             INTEGER PRIMARY KEY AUTOINCREMENT,
			id              TEXT    NOT NULL UNIQUE,
			name            TEXT    NOT NULL,
			age             INTEGER NOT NULL,
			belt            TEXT    NOT NULL,
			blood_type      TEXT    NOT NULL DEFAULT '',
			phone           TEXT    NOT NULL DEFAULT '',
			observations    TEXT    NOT NULL DEFAULT '',
			address         TEXT    NOT NULL DEFAULT '',
			enrollment_date TEXT    NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// CreateStudent inserts a new row into the students table.
//
// HOW PREPARED STATEMENTS KEEP INPUT OUT OF THE SQL:
// ───────────────────────────────────────────────────
// Names, phones and observations are free text typed by the user. The ?
// placeholders send them to SQLite separately from the query, so a value
// like "'; DROP TABLE students; --" is stored as a name and never run.
//
// The UNIQUE constraint on id turns a duplicate id into an Exec error.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) CreateStudent(student types.Student) error {
	stmt, err := s.Db.Prepare(`
		INSERT INTO students
			(id, name, age, belt, blood_type, phone, observations, address, enrollment_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("CreateStudent: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		student.ID,
		student.Name,
		student.Age,
		student.Belt,
		student.BloodType,
		student.Phone,
		student.Observations,
		student.Address,
		student.EnrollmentDate,
	)
	if err != nil {
		return fmt.Errorf("CreateStudent: exec: %w", err)
	}

	return nil
}

const selectColumns = "SELECT id, name, age, belt, blood_type, phone, observations, address, enrollment_date FROM students"

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(row scanner) (types.Student, error) {
	var student types.Student
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Age,
		&student.Belt,
		&student.BloodType,
		&student.Phone,
		&student.Observations,
		&student.Address,
		&student.EnrollmentDate,
	)
	return student, err
}

// ─────────────────────────────────────────────────────────────────────────────
// GetStudentByID fetches exactly one student row matched by id.
//
// HOW QueryRow + Scan WORK:
// ──────────────────────────
// QueryRow returns a single *Row. Scan (through scanStudent) copies its
// columns into the fields of a types.Student in SELECT order. When the
// query matched nothing, Scan returns sql.ErrNoRows, which is reported as
// storage.ErrNotFound so callers never import database/sql.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) GetStudentByID(id string) (types.Student, error) {
	stmt, err := s.Db.Prepare(selectColumns + " WHERE id = ? LIMIT 1")
	if err != nil {
		return types.Student{}, fmt.Errorf("GetStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	student, err := scanStudent(stmt.QueryRow(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, fmt.Errorf("no student found with id %s: %w", id, storage.ErrNotFound)
		}
		return types.Student{}, fmt.Errorf("GetStudentByID: scan: %w", err)
	}

	return student, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetStudents returns all student rows in insertion order.
//
// HOW Query + rows.Next() WORK:
// ──────────────────────────────
// Query returns *sql.Rows, a cursor over many rows. rows.Next() advances
// it and reports false at the end or on error; rows.Err() tells the two
// apart. rows.Close() is deferred so the connection is released even when
// a scan fails halfway.
//
// An empty table returns an empty slice, not nil, so JSON views show [].
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) GetStudents() ([]types.Student, error) {
	stmt, err := s.Db.Prepare(selectColumns + " ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("GetStudents: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close()

	students := make([]types.Student, 0)

	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return students, nil
}

// DeleteStudentByID removes a student row by id. Deleting an id that is
// not stored affects zero rows and is not an error.
func (s *SQLite) DeleteStudentByID(id string) error {
	stmt, err := s.Db.Prepare("DELETE FROM students WHERE id = ?")
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(id); err != nil {
		return fmt.Errorf("DeleteStudentByID: exec: %w", err)
	}

	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.Db.Close()
}
