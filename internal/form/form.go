// Package form implements the student registration form: it holds the
// draft being typed, validates the required fields, normalizes the input
// and hands a finished record to the owner through a callback.
package form

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aanand-mishra/students-roster/internal/types"
	"github.com/aanand-mishra/students-roster/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ErrMissingRequiredField is the only way a submission can fail.
var ErrMissingRequiredField = errors.New("missing required field")

// AddFunc receives each successfully submitted student. The owner assigns
// the id and stores the record.
type AddFunc func(types.NewStudent)

// ValidationError reports which required fields were rejected. It wraps
// ErrMissingRequiredField.
type ValidationError struct {
	// Fields holds the rejected draft fields, e.g. "name", "age".
	Fields []string
	Notice response.Notice
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredField, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingRequiredField
}

// Catalog holds the closed lists offered by the belt and blood type
// selects.
type Catalog struct {
	Belts      []string `json:"belts"`
	BloodTypes []string `json:"bloodTypes"`
}

// Form is the registration form. The zero value is not usable; call New.
type Form struct {
	draft    types.Draft
	catalog  Catalog
	onAdd    AddFunc
	now      func() time.Time
	log      *slog.Logger
	validate *validator.Validate
}

// Option configures a Form.
type Option func(*Form)

// WithClock sets the source of the enrollment date.
func WithClock(now func() time.Time) Option {
	return func(f *Form) { f.now = now }
}

// WithLogger sets the logger used for submission events.
func WithLogger(log *slog.Logger) Option {
	return func(f *Form) { f.log = log }
}

// ─────────────────────────────────────────────────────────────────────────────
// New returns an empty form that reports new students to onAdd.
//
// HOW OPTIONS WORK:
// ──────────────────
// Every field gets a working default first: time.Now for the enrollment
// date and slog.Default() for logs. Each Option then overrides one of them:
//
//	f := form.New(catalog, owner.AddStudent,
//		form.WithClock(fixedClock),
//		form.WithLogger(log),
//	)
//
// onAdd may be nil, in which case Submit only validates and resets.
// ─────────────────────────────────────────────────────────────────────────────
func New(catalog Catalog, onAdd AddFunc, opts ...Option) *Form {
	f := &Form{
		catalog:  catalog,
		onAdd:    onAdd,
		now:      time.Now,
		log:      slog.Default(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Options returns the belt and blood type enumerations.
func (f *Form) Options() Catalog {
	return f.catalog
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() types.Draft {
	return f.draft
}

// SetDraft replaces the whole draft.
func (f *Form) SetDraft(d types.Draft) {
	f.draft = d
}

// Set updates a single draft field. Values are stored exactly as typed;
// trimming happens on Submit.
func (f *Form) Set(field Field, value string) error {
	switch field {
	case FieldName:
		f.draft.Name = value
	case FieldAge:
		f.draft.Age = value
	case FieldBelt:
		f.draft.Belt = value
	case FieldBloodType:
		f.draft.BloodType = value
	case FieldPhone:
		f.draft.Phone = value
	case FieldObservations:
		f.draft.Observations = value
	case FieldAddress:
		f.draft.Address = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// Reset clears every draft field.
func (f *Form) Reset() {
	f.draft = types.Draft{}
}

// ─────────────────────────────────────────────────────────────────────────────
// Submit validates the draft and, if name, age and belt are present,
// emits the normalized student to the add callback and clears the draft.
//
// WHAT HAPPENS ON SUCCESS:
// ─────────────────────────
// Name, phone, observations and address are trimmed. Age keeps only its
// whole part, so "12.9" becomes 12. The enrollment date is the calendar
// date of the injected clock in the clock's own location, formatted as
// YYYY-MM-DD. Belt and blood type are copied as selected.
//
// WHAT HAPPENS ON FAILURE:
// ─────────────────────────
// The returned error is a *ValidationError that wraps
// ErrMissingRequiredField. Nothing is emitted and the draft is left as it
// was, so the user can fix one field and submit again.
// ─────────────────────────────────────────────────────────────────────────────
func (f *Form) Submit() (types.NewStudent, response.Notice, error) {
	age, verr := f.check()
	if verr != nil {
		f.log.Warn("student submission rejected",
			slog.String("fields", strings.Join(verr.Fields, ",")))
		return types.NewStudent{}, verr.Notice, verr
	}

	student := types.NewStudent{
		Name:           strings.TrimSpace(f.draft.Name),
		Age:            age,
		Belt:           f.draft.Belt,
		BloodType:      f.draft.BloodType,
		Phone:          strings.TrimSpace(f.draft.Phone),
		Observations:   strings.TrimSpace(f.draft.Observations),
		Address:        strings.TrimSpace(f.draft.Address),
		EnrollmentDate: f.now().Format(time.DateOnly),
	}

	if f.onAdd != nil {
		f.onAdd(student)
	}

	f.Reset()

	f.log.Info("student submitted",
		slog.String("name", student.Name),
		slog.String("belt", student.Belt))

	return student, response.Success(
		"Aluno cadastrado!",
		fmt.Sprintf("%s foi adicionado com sucesso.", student.Name),
	), nil
}

// check validates a trimmed copy of the required fields so whitespace-only
// input counts as missing. On success it returns the parsed age.
func (f *Form) check() (int, *ValidationError) {
	trimmed := types.Draft{
		Name: strings.TrimSpace(f.draft.Name),
		Age:  strings.TrimSpace(f.draft.Age),
		Belt: strings.TrimSpace(f.draft.Belt),
	}

	err := f.validate.Struct(trimmed)
	if err == nil {
		age, err := parseAge(trimmed.Age)
		if err != nil {
			return 0, &ValidationError{
				Fields: []string{"age"},
				Notice: response.Notice{
					Variant:     response.VariantDestructive,
					Title:       "Dados inválidos",
					Description: "Idade deve ser um número inteiro válido.",
				},
			}
		}
		return age, nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return 0, &ValidationError{
			Fields: []string{"draft"},
			Notice: response.GeneralError(err),
		}
	}

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, strings.ToLower(e.Field()))
	}

	return 0, &ValidationError{
		Fields: fields,
		Notice: response.ValidationError(errs),
	}
}

// parseAge converts validated numeric text to whole years, dropping any
// fractional part. No lower or upper age limit is enforced here, but the
// value must fit in 32 bits.
func parseAge(s string) (int, error) {
	whole, _, _ := strings.Cut(strings.TrimSpace(s), ".")
	v, err := strconv.ParseInt(whole, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parseAge: %w", err)
	}
	return int(v), nil
}
