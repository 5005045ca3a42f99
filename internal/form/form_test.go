package form

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aanand-mishra/students-roster/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = Catalog{
	Belts:      []string{"Branca", "Amarela", "Verde", "Azul", "Vermelha", "Preta"},
	BloodTypes: []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"},
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time { return time.Date(year, month, day, 23, 59, 0, 0, time.Local) }
}

func newTestForm(t *testing.T) (*Form, *[]types.NewStudent) {
	t.Helper()
	var added []types.NewStudent
	f := New(testCatalog,
		func(s types.NewStudent) { added = append(added, s) },
		WithClock(fixedClock(2024, time.May, 1)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return f, &added
}

func TestSubmit_Example(t *testing.T) {
	f, added := newTestForm(t)
	f.SetDraft(types.Draft{
		Name:  "Ana Silva",
		Age:   "25",
		Belt:  "Azul",
		Phone: " 11999998888 ",
	})

	got, notice, err := f.Submit()
	require.NoError(t, err)

	want := types.NewStudent{
		Name:           "Ana Silva",
		Age:            25,
		Belt:           "Azul",
		BloodType:      "",
		Phone:          "11999998888",
		Observations:   "",
		Address:        "",
		EnrollmentDate: "2024-05-01",
	}
	assert.Equal(t, want, got)
	assert.Equal(t, []types.NewStudent{want}, *added)
	assert.True(t, f.Draft().IsEmpty())
	assert.False(t, notice.Destructive())
	assert.Equal(t, "Aluno cadastrado!", notice.Title)
	assert.Equal(t, "Ana Silva foi adicionado com sucesso.", notice.Description)
}

func TestSubmit_TrimsFreeText(t *testing.T) {
	f, added := newTestForm(t)
	f.SetDraft(types.Draft{
		Name:         "  Bruno Costa \t",
		Age:          "31",
		Belt:         "Preta",
		BloodType:    "O-",
		Phone:        "\n(11) 91234-5678 ",
		Observations: "  alergia a dipirona  ",
		Address:      " Rua das Flores, 10 ",
	})

	_, _, err := f.Submit()
	require.NoError(t, err)
	require.Len(t, *added, 1)

	s := (*added)[0]
	assert.Equal(t, "Bruno Costa", s.Name)
	assert.Equal(t, 31, s.Age)
	assert.Equal(t, "O-", s.BloodType)
	assert.Equal(t, "(11) 91234-5678", s.Phone)
	assert.Equal(t, "alergia a dipirona", s.Observations)
	assert.Equal(t, "Rua das Flores, 10", s.Address)
}

func TestSubmit_MissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		draft  types.Draft
		fields []string
	}{
		{"empty name", types.Draft{Age: "30", Belt: "Branca"}, []string{"name"}},
		{"empty age", types.Draft{Name: "Ana", Belt: "Branca"}, []string{"age"}},
		{"empty belt", types.Draft{Name: "Ana", Age: "30"}, []string{"belt"}},
		{"blank name", types.Draft{Name: "   ", Age: "30", Belt: "Branca"}, []string{"name"}},
		{"all empty", types.Draft{Phone: "123"}, []string{"name", "age", "belt"}},
		{"non numeric age", types.Draft{Name: "Ana", Age: "abc", Belt: "Azul"}, []string{"age"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, added := newTestForm(t)
			f.SetDraft(tc.draft)

			_, notice, err := f.Submit()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingRequiredField))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.fields, verr.Fields)

			assert.True(t, notice.Destructive())
			assert.Empty(t, *added)
			assert.Equal(t, tc.draft, f.Draft())
		})
	}
}

func TestSubmit_MissingNameNotice(t *testing.T) {
	f, _ := newTestForm(t)
	f.SetDraft(types.Draft{Name: "", Age: "30", Belt: "Branca"})

	_, notice, err := f.Submit()
	require.Error(t, err)
	assert.Equal(t, "Campos obrigatórios", notice.Title)
	assert.Equal(t, "Preencha nome, idade e graduação.", notice.Description)
}

func TestSubmit_AgeIsNotRangeChecked(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"150", 150},
		{"12.9", 12},
		{" 40 ", 40},
		{"2147483647", 2147483647},
		{"-0.5", 0},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			f, _ := newTestForm(t)
			f.SetDraft(types.Draft{Name: "Ana", Age: tc.in, Belt: "Azul"})

			got, _, err := f.Submit()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Age)
		})
	}
}

func TestSubmit_AgeMustFitInt32(t *testing.T) {
	tests := []string{
		"99999999999999999999",
		"2147483648",
		"-2147483649",
		"99999999999999999999.5",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			f, added := newTestForm(t)
			draft := types.Draft{Name: "Ana", Age: in, Belt: "Azul"}
			f.SetDraft(draft)

			_, notice, err := f.Submit()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingRequiredField))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, []string{"age"}, verr.Fields)
			assert.True(t, notice.Destructive())
			assert.Equal(t, "Dados inválidos", notice.Title)

			assert.Empty(t, *added)
			assert.Equal(t, draft, f.Draft())
		})
	}
}

func TestSubmit_BloodTypeAndBeltPassThrough(t *testing.T) {
	f, _ := newTestForm(t)
	f.SetDraft(types.Draft{Name: "Ana", Age: "20", Belt: "Roxa", BloodType: "Z"})

	got, _, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Roxa", got.Belt)
	assert.Equal(t, "Z", got.BloodType)
}

func TestSubmit_EnrollmentDateFollowsClock(t *testing.T) {
	f, _ := newTestForm(t)
	f.now = fixedClock(2025, time.December, 31)
	f.SetDraft(types.Draft{Name: "Ana", Age: "20", Belt: "Verde"})

	got, _, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31", got.EnrollmentDate)
}

func TestSubmit_EnrollmentDateIsLocalCalendarDay(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	f, _ := newTestForm(t)
	// 2024-05-02 01:30 in UTC, still May 1st for the user.
	f.now = func() time.Time { return time.Date(2024, time.May, 1, 22, 30, 0, 0, saoPaulo) }
	f.SetDraft(types.Draft{Name: "Ana", Age: "20", Belt: "Verde"})

	got, _, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", got.EnrollmentDate)
}

func TestSubmit_DefaultClockUsesToday(t *testing.T) {
	f := New(testCatalog, nil, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	f.SetDraft(types.Draft{Name: "Ana", Age: "20", Belt: "Verde"})

	before := time.Now().Format(time.DateOnly)
	got, _, err := f.Submit()
	after := time.Now().Format(time.DateOnly)

	require.NoError(t, err)
	assert.Contains(t, []string{before, after}, got.EnrollmentDate)
}

func TestSubmit_RetryAfterFailure(t *testing.T) {
	f, added := newTestForm(t)
	require.NoError(t, f.Set(FieldAge, "30"))
	require.NoError(t, f.Set(FieldBelt, "Branca"))

	_, _, err := f.Submit()
	require.Error(t, err)

	require.NoError(t, f.Set(FieldName, "Carlos"))
	_, _, err = f.Submit()
	require.NoError(t, err)
	assert.Len(t, *added, 1)
}

func TestSet(t *testing.T) {
	f, _ := newTestForm(t)

	for field, value := range map[Field]string{
		FieldName:         "Ana",
		FieldAge:          "25",
		FieldBelt:         "Azul",
		FieldBloodType:    "A+",
		FieldPhone:        "1199",
		FieldObservations: "obs",
		FieldAddress:      "Rua",
	} {
		require.NoError(t, f.Set(field, value))
	}

	assert.Equal(t, types.Draft{
		Name: "Ana", Age: "25", Belt: "Azul", BloodType: "A+",
		Phone: "1199", Observations: "obs", Address: "Rua",
	}, f.Draft())

	assert.Error(t, f.Set("email", "x@y"))

	f.Reset()
	assert.True(t, f.Draft().IsEmpty())
}

func TestFields(t *testing.T) {
	f, _ := newTestForm(t)
	fields := f.Fields()

	require.Len(t, fields, 7)
	var required []Field
	for _, fs := range fields {
		if fs.Required {
			required = append(required, fs.Field)
		}
	}
	assert.Equal(t, []Field{FieldName, FieldAge, FieldBelt}, required)
	assert.Equal(t, testCatalog.Belts, fields[2].Options)
	assert.Equal(t, testCatalog.BloodTypes, fields[3].Options)
	assert.Equal(t, testCatalog, f.Options())
}
