// Package storage defines the Storage interface, the contract any backend
// must satisfy to keep the roster's students.
//
// The roster only depends on this interface, so tests can run against the
// in-memory backend while the console host uses SQLite.
package storage

import (
	"errors"

	"github.com/aanand-mishra/students-roster/internal/types"
)

// ErrNotFound is returned when no student has the requested id.
var ErrNotFound = errors.New("student not found")

// Storage is the persistence contract for students.
type Storage interface {
	// CreateStudent stores a student whose ID has already been assigned.
	CreateStudent(student types.Student) error

	// GetStudentByID fetches a single student.
	// Returns an error wrapping ErrNotFound if there is no such student.
	GetStudentByID(id string) (types.Student, error)

	// GetStudents returns every student in insertion order.
	// Returns an empty slice (not nil) if there are no students.
	GetStudents() ([]types.Student, error)

	// DeleteStudentByID removes a student permanently. Deleting an id that
	// does not exist is not an error.
	DeleteStudentByID(id string) error

	// Close releases any resources held by the backend.
	Close() error
}
