// Package student contains the console commands for the student form and
// roster table.
//
// Each exported function is a factory: it is called once at startup with
// its dependencies and returns the console.HandlerFunc that runs on every
// matching command.
//
//	c.HandleFunc("list", "list", student.List(tbl, owner))
package student

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aanand-mishra/students-roster/internal/console"
	"github.com/aanand-mishra/students-roster/internal/form"
	"github.com/aanand-mishra/students-roster/internal/table"
	"github.com/aanand-mishra/students-roster/internal/types"
)

// Lister supplies the current ordered list of students.
type Lister interface {
	Students() []types.Student
}

// Owner is a Lister that can report the outcome of its last change.
type Owner interface {
	Lister
	Err() error
}

// Set handles "set <field> <value>". An absent value clears the field.
func Set(f *form.Form) console.HandlerFunc {
	return func(out *console.Output, args string) error {
		field, value, _ := strings.Cut(strings.TrimLeft(args, " "), " ")
		if field == "" {
			return errors.New("uso: set <campo> <valor>")
		}
		if err := f.Set(form.Field(field), value); err != nil {
			return err
		}
		out.Draft(f.Draft())
		return nil
	}
}

// Draft handles "draft".
func Draft(f *form.Form) console.HandlerFunc {
	return func(out *console.Output, _ string) error {
		out.Draft(f.Draft())
		return nil
	}
}

// Fields handles "fields", listing the inputs and their options.
func Fields(f *form.Form) console.HandlerFunc {
	return func(out *console.Output, _ string) error {
		out.Fields(f.Fields())
		return nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Submit handles "submit".
//
// Validation failures are shown as notices, not returned as errors, since
// the draft is kept for correction.
//
// WHEN THE OWNER CANNOT SAVE:
// ────────────────────────────
// The form clears its draft as soon as the add callback returns, but the
// callback has no result. The owner reports the outcome through Err, so
// the draft is copied first and put back when the save failed. Only the
// error is shown in that case; the success notice is never printed.
// ─────────────────────────────────────────────────────────────────────────────
func Submit(f *form.Form, owner Owner) console.HandlerFunc {
	return func(out *console.Output, _ string) error {
		saved := f.Draft()

		_, notice, err := f.Submit()
		if err != nil && !errors.Is(err, form.ErrMissingRequiredField) {
			return err
		}
		if err == nil && owner.Err() != nil {
			f.SetDraft(saved)
			return fmt.Errorf("aluno não foi salvo: %w", owner.Err())
		}
		out.Notice(notice)
		return nil
	}
}

// List handles "list".
func List(t *table.Table, students Lister) console.HandlerFunc {
	return func(out *console.Output, _ string) error {
		out.Summary(t.Summary(students.Students()))
		return nil
	}
}

// Show handles "show <id|row>" and opens the detail view. An unknown id
// leaves the current selection as it was.
func Show(t *table.Table, students Lister) console.HandlerFunc {
	return func(out *console.Output, args string) error {
		list := students.Students()
		id, err := resolve(list, args)
		if err != nil {
			return err
		}

		if !slices.ContainsFunc(list, func(s types.Student) bool { return s.ID == id }) {
			return fmt.Errorf("aluno %s não encontrado", id)
		}

		t.Inspect(id)
		detail, ok := t.Detail(list)
		if !ok {
			return fmt.Errorf("aluno %s não encontrado", id)
		}
		out.Detail(detail)
		return nil
	}
}

// Close handles "close" and returns to no selection.
func Close(t *table.Table) console.HandlerFunc {
	return func(out *console.Output, _ string) error {
		t.Close()
		out.Message("Detalhes fechados.")
		return nil
	}
}

// Delete handles "delete <id|row>". The request is forwarded as-is; the
// updated list is shown afterwards.
func Delete(t *table.Table, owner Owner) console.HandlerFunc {
	return func(out *console.Output, args string) error {
		id, err := resolve(owner.Students(), args)
		if err != nil {
			return err
		}

		t.Delete(id)
		if err := owner.Err(); err != nil {
			return fmt.Errorf("aluno não foi removido: %w", err)
		}
		out.Summary(t.Summary(owner.Students()))
		return nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// resolve turns an argument into a student id. A number that is not
// itself an id is read as a 1-based row position in list.
//
// HOW ARGUMENTS ARE READ:
// ────────────────────────
// An exact id always wins. Otherwise a number is matched against the "#"
// column printed by "list", so "show 2" opens the second student. Any
// other text is returned unchanged and the caller decides what a missing
// id means.
// ─────────────────────────────────────────────────────────────────────────────
func resolve(list []types.Student, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", errors.New("informe o id ou o número da linha")
	}

	for _, s := range list {
		if s.ID == arg {
			return arg, nil
		}
	}

	if n, err := strconv.Atoi(arg); err == nil {
		if n >= 1 && n <= len(list) {
			return list[n-1].ID, nil
		}
		return "", fmt.Errorf("linha %d fora da tabela", n)
	}

	return arg, nil
}
