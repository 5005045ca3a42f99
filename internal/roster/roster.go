// Package roster owns the canonical, ordered list of students. It is the
// only place the list changes: the form adds through AddStudent and the
// table deletes through DeleteStudent. Every change is written to storage
// before the in-memory list is updated.
package roster

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/aanand-mishra/students-roster/internal/storage"
	"github.com/aanand-mishra/students-roster/internal/types"
	"github.com/google/uuid"
)

// Roster is the owner of the student list. It is not safe for concurrent
// use.
type Roster struct {
	store    storage.Storage
	students []types.Student
	newID    func() string
	log      *slog.Logger
	err      error
}

// Option configures a Roster.
type Option func(*Roster)

// WithIDs sets the id generator. The default generates random UUIDs.
func WithIDs(newID func() string) Option {
	return func(r *Roster) { r.newID = newID }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(r *Roster) { r.log = log }
}

// New loads the existing students from store.
func New(store storage.Storage, opts ...Option) (*Roster, error) {
	r := &Roster{
		store: store,
		newID: uuid.NewString,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	students, err := store.GetStudents()
	if err != nil {
		return nil, fmt.Errorf("roster.New: load students: %w", err)
	}
	r.students = students

	return r, nil
}

// Students returns the current list in insertion order.
func (r *Roster) Students() []types.Student {
	return slices.Clone(r.students)
}

// Len returns the number of students.
func (r *Roster) Len() int {
	return len(r.students)
}

// Err returns the persistence error of the last AddStudent or
// DeleteStudent call, or nil if it succeeded.
func (r *Roster) Err() error {
	return r.err
}

// ─────────────────────────────────────────────────────────────────────────────
// AddStudent assigns an id to s, stores it and appends it to the list.
//
// REPORTING FAILURES:
// ─────────────────────
// AddStudent is handed to the form as its form.AddFunc, which returns
// nothing. A storage failure is logged, kept in Err and leaves the list
// unchanged; callers that need the outcome read Err right after the call.
// ─────────────────────────────────────────────────────────────────────────────
func (r *Roster) AddStudent(s types.NewStudent) {
	student := s.WithID(r.newID())

	if err := r.store.CreateStudent(student); err != nil {
		r.err = err
		r.log.Error("failed to add student",
			slog.String("name", student.Name),
			slog.String("error", err.Error()))
		return
	}

	r.err = nil
	r.students = append(r.students, student)
	r.log.Info("student added",
		slog.String("id", student.ID),
		slog.String("name", student.Name))
}

// DeleteStudent removes the student with id from storage and from the
// list. Unknown ids are ignored.
func (r *Roster) DeleteStudent(id string) {
	i := slices.IndexFunc(r.students, func(s types.Student) bool { return s.ID == id })
	if i < 0 {
		r.err = nil
		r.log.Debug("delete of unknown student ignored", slog.String("id", id))
		return
	}

	if err := r.store.DeleteStudentByID(id); err != nil {
		r.err = err
		r.log.Error("failed to delete student",
			slog.String("id", id),
			slog.String("error", err.Error()))
		return
	}

	r.err = nil
	r.students = slices.Delete(r.students, i, i+1)
	r.log.Info("student deleted", slog.String("id", id))
}
