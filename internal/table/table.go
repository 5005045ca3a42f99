// Package table projects the roster's students into the views a host
// renders: a summary with one row per student and the detail of the one
// student currently being inspected.
//
// A Table never changes the students it is given. Deletion is forwarded
// to the owner by id; the row disappears once the owner stops supplying
// it.
package table

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/aanand-mishra/students-roster/internal/types"
)

const (
	// Placeholder for an empty field in the summary.
	emptyCell = "-"

	NotInformed    = "Não informado"
	NoObservations = "Nenhuma observação registrada"

	EmptyTitle = "Nenhum aluno cadastrado ainda."
	EmptyHint  = "Use o formulário acima para adicionar alunos."
)

// DeleteFunc receives the id of a student the user asked to delete.
type DeleteFunc func(id string)

// Summary is the read-only list view.
type Summary struct {
	Title string `json:"title"`
	Count int    `json:"count"`
	Badge string `json:"badge"`
	Empty bool   `json:"empty"`
	// Placeholder is only set when Empty is true.
	Placeholder []string `json:"placeholder,omitempty"`
	Rows        []Row    `json:"rows"`
}

// Row is one student in the summary.
type Row struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Belt      string    `json:"belt"`
	BeltStyle BeltStyle `json:"beltStyle"`
	// BloodType is empty when not informed; Cells renders it as "-".
	BloodType string `json:"bloodType,omitempty"`
	Phone     string `json:"phone"`
}

// Detail is the full view of the selected student.
type Detail struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Age            string    `json:"age"`
	Belt           string    `json:"belt"`
	BeltStyle      BeltStyle `json:"beltStyle"`
	BloodType      string    `json:"bloodType"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Observations   string    `json:"observations"`
	EnrollmentDate string    `json:"enrollmentDate"`
}

// Table holds the selection state of the roster view.
type Table struct {
	onDelete DeleteFunc
	selected *string
	log      *slog.Logger
}

// New returns a table with nothing selected that forwards deletions to
// onDelete.
func New(onDelete DeleteFunc) *Table {
	return &Table{onDelete: onDelete, log: slog.Default()}
}

// WithLogger sets the logger and returns t.
func (t *Table) WithLogger(log *slog.Logger) *Table {
	t.log = log
	return t
}

// CountBadge is "1 aluno" for exactly one student and "N alunos"
// otherwise, zero included.
func CountBadge(n int) string {
	if n == 1 {
		return "1 aluno"
	}
	return fmt.Sprintf("%d alunos", n)
}

// Summary projects students, in the order given, into the list view.
func (t *Table) Summary(students []types.Student) Summary {
	s := Summary{
		Title: "Alunos Cadastrados",
		Count: len(students),
		Badge: CountBadge(len(students)),
		Empty: len(students) == 0,
		Rows:  make([]Row, 0, len(students)),
	}
	if s.Empty {
		s.Placeholder = []string{EmptyTitle, EmptyHint}
		return s
	}

	for _, st := range students {
		s.Rows = append(s.Rows, Row{
			ID:        st.ID,
			Name:      st.Name,
			Age:       st.Age,
			Belt:      st.Belt,
			BeltStyle: StyleForBelt(st.Belt),
			BloodType: st.BloodType,
			Phone:     orDefault(st.Phone, emptyCell),
		})
	}
	return s
}

// Cells returns the row as display strings: name, age, belt, blood type
// and phone.
func (r Row) Cells() []string {
	return []string{
		r.Name,
		fmt.Sprint(r.Age),
		r.Belt,
		orDefault(r.BloodType, emptyCell),
		r.Phone,
	}
}

// Inspect selects the student with id, replacing any prior selection.
func (t *Table) Inspect(id string) {
	t.selected = &id
	t.log.Debug("student selected", slog.String("id", id))
}

// Close clears the selection.
func (t *Table) Close() {
	t.selected = nil
}

// Selected returns the selected id, if any.
func (t *Table) Selected() (string, bool) {
	if t.selected == nil {
		return "", false
	}
	return *t.selected, true
}

// Detail resolves the selection against students. It reports false when
// nothing is selected or the selected student is no longer supplied.
func (t *Table) Detail(students []types.Student) (Detail, bool) {
	if t.selected == nil {
		return Detail{}, false
	}

	i := slices.IndexFunc(students, func(s types.Student) bool { return s.ID == *t.selected })
	if i < 0 {
		return Detail{}, false
	}

	return newDetail(students[i]), true
}

func newDetail(s types.Student) Detail {
	return Detail{
		ID:             s.ID,
		Name:           s.Name,
		Age:            fmt.Sprintf("%d anos", s.Age),
		Belt:           s.Belt,
		BeltStyle:      StyleForBelt(s.Belt),
		BloodType:      orDefault(s.BloodType, NotInformed),
		Phone:          orDefault(s.Phone, NotInformed),
		Address:        orDefault(s.Address, NotInformed),
		Observations:   orDefault(s.Observations, NoObservations),
		EnrollmentDate: s.EnrollmentDate,
	}
}

// Delete asks the owner to remove the student with id. It neither
// confirms nor checks the outcome.
func (t *Table) Delete(id string) {
	t.log.Debug("student delete requested", slog.String("id", id))
	if t.onDelete != nil {
		t.onDelete(id)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
