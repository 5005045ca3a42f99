// Package memory provides an in-process storage.Storage. Nothing survives
// Close; it backs the "memory" storage driver and the roster tests.
package memory

import (
	"fmt"
	"slices"

	"github.com/aanand-mishra/students-roster/internal/storage"
	"github.com/aanand-mishra/students-roster/internal/types"
)

// Memory keeps students in insertion order. It is not safe for concurrent
// use.
type Memory struct {
	students []types.Student
}

// New returns an empty store.
func New() *Memory {
	return &Memory{students: make([]types.Student, 0)}
}

func (m *Memory) index(id string) int {
	return slices.IndexFunc(m.students, func(s types.Student) bool { return s.ID == id })
}

// CreateStudent appends student. An id that is already stored is
// rejected.
func (m *Memory) CreateStudent(student types.Student) error {
	if m.index(student.ID) >= 0 {
		return fmt.Errorf("CreateStudent: duplicate id %s", student.ID)
	}
	m.students = append(m.students, student)
	return nil
}

// GetStudentByID returns the student with id, or an error wrapping
// storage.ErrNotFound.
func (m *Memory) GetStudentByID(id string) (types.Student, error) {
	i := m.index(id)
	if i < 0 {
		return types.Student{}, fmt.Errorf("no student found with id %s: %w", id, storage.ErrNotFound)
	}
	return m.students[i], nil
}

// GetStudents returns a copy of all students in insertion order.
func (m *Memory) GetStudents() ([]types.Student, error) {
	return slices.Clone(m.students), nil
}

// DeleteStudentByID removes the student with id. Unknown ids are not an
// error, matching the SQLite store.
func (m *Memory) DeleteStudentByID(id string) error {
	if i := m.index(id); i >= 0 {
		m.students = slices.Delete(m.students, i, i+1)
	}
	return nil
}

// Close drops every stored student.
func (m *Memory) Close() error {
	m.students = m.students[:0]
	return nil
}
