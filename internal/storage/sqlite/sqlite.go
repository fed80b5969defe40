// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The default data source name is ":memory:" — the whole roster lives
// in process memory and vanishes at exit. Nothing about the code below
// changes if a file path is configured instead; durability is purely a
// configuration choice.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/student-registry/internal/config"
	"github.com/aanand-mishra/student-registry/internal/storage"
	"github.com/aanand-mishra/student-registry/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at cfg.StoragePath, creates the
// students table if it does not already exist, and returns a
// ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	// sql.Open does NOT open a real connection yet — it just validates
	// the driver name and data source name (DSN).
	// The first actual connection happens on the first query.
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe to run on every
	// startup.
	//
	// Schema:
	//   id   — integer primary key, auto-incremented by SQLite
	//   name — student's full name
	//   roll — roll number; UNIQUE makes it the roster's natural key
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT    NOT NULL,
			roll INTEGER NOT NULL UNIQUE
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the underlying connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// CreateStudent inserts a new row into the students table.
//
// Prepared statements use placeholders (?) so the driver sends the
// query and the values separately — values are treated as pure data,
// never as SQL syntax.
func (s *SQLite) CreateStudent(name string, roll int) (int64, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO students (name, roll) VALUES (?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: prepare: %w", err)
	}
	// defer ensures the statement is closed when this function returns,
	// even if we return early due to an error.
	defer stmt.Close()

	result, err := stmt.Exec(name, roll)
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: last insert id: %w", err)
	}

	return lastID, nil
}

// GetStudentByRoll fetches exactly one student row matched by roll
// number. QueryRow returns a single-row result; the "no rows" error
// surfaces only when Scan is called.
func (s *SQLite) GetStudentByRoll(roll int) (types.Student, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, roll FROM students WHERE roll = ? LIMIT 1",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("GetStudentByRoll: prepare: %w", err)
	}
	defer stmt.Close()

	var student types.Student

	err = stmt.QueryRow(roll).Scan(
		&student.ID,
		&student.Name,
		&student.Roll,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			// Wrap the package sentinel so callers can errors.Is it
			// without knowing which backend answered.
			return types.Student{}, fmt.Errorf("roll %d: %w", roll, storage.ErrRollNotFound)
		}
		return types.Student{}, fmt.Errorf("GetStudentByRoll: scan: %w", err)
	}

	return student, nil
}

// GetStudents returns all roster rows as a slice.
func (s *SQLite) GetStudents() ([]types.Student, error) {
	stmt, err := s.Db.Prepare(
		// Explicitly list columns — if a column is added later,
		// SELECT * would break Scan's ordering.
		"SELECT id, name, roll FROM students",
	)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close() // must close rows to free the DB connection

	// Pre-allocate an empty (non-nil) slice so an empty roster lists
	// as [] rather than null wherever it gets encoded.
	students := make([]types.Student, 0)

	for rows.Next() {
		var student types.Student

		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Roll,
		); err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}

		students = append(students, student)
	}

	// rows.Err() captures any error that occurred during iteration.
	// This is separate from Scan errors.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return students, nil
}

// UpdateStudentByRoll replaces a student's data with the provided
// values, then re-fetches the row so the caller gets back exactly what
// is stored.
func (s *SQLite) UpdateStudentByRoll(roll int, student types.Student) (types.Student, error) {
	stmt, err := s.Db.Prepare(
		"UPDATE students SET name = ?, roll = ? WHERE roll = ?",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByRoll: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(student.Name, student.Roll, roll)
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByRoll: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByRoll: rows affected: %w", err)
	}
	if affected == 0 {
		return types.Student{}, fmt.Errorf("roll %d: %w", roll, storage.ErrRollNotFound)
	}

	return s.GetStudentByRoll(student.Roll)
}

// DeleteStudentByRoll removes a roster row by roll number.
func (s *SQLite) DeleteStudentByRoll(roll int) error {
	stmt, err := s.Db.Prepare("DELETE FROM students WHERE roll = ?")
	if err != nil {
		return fmt.Errorf("DeleteStudentByRoll: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(roll)
	if err != nil {
		return fmt.Errorf("DeleteStudentByRoll: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteStudentByRoll: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("roll %d: %w", roll, storage.ErrRollNotFound)
	}

	return nil
}
