package console

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/aanand-mishra/students-roster/internal/form"
	"github.com/aanand-mishra/students-roster/internal/table"
	"github.com/aanand-mishra/students-roster/internal/types"
	"github.com/aanand-mishra/students-roster/internal/utils/response"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Output renders views either as aligned text or as JSON documents.
type Output struct {
	w      io.Writer
	format string
	log    *slog.Logger
}

// NewOutput returns an Output writing to w. Unknown formats render as
// text.
func NewOutput(w io.Writer, format string) *Output {
	if format != FormatJSON {
		format = FormatText
	}
	return &Output{w: w, format: format, log: slog.Default()}
}

// WithLogger sets the logger that receives write failures and returns o.
func (o *Output) WithLogger(log *slog.Logger) *Output {
	o.log = log
	return o
}

// json writes one {"kind": ..., "data": ...} document. A failed write
// cannot be shown to the user on the same stream, so it is logged.
func (o *Output) json(kind string, v any) {
	err := response.WriteJSON(o.w, map[string]any{"kind": kind, "data": v})
	if err != nil {
		o.log.Error("failed to write output",
			slog.String("kind", kind),
			slog.String("error", err.Error()))
	}
}

// Notice renders an acknowledgement.
func (o *Output) Notice(n response.Notice) {
	if o.format == FormatJSON {
		o.json("notice", n)
		return
	}
	mark := "✓"
	if n.Destructive() {
		mark = "!"
	}
	fmt.Fprintf(o.w, "%s %s: %s\n", mark, n.Title, n.Description)
}

// Error renders err as a destructive notice.
func (o *Output) Error(err error) {
	o.Notice(response.GeneralError(err))
}

// Message renders a line of text.
func (o *Output) Message(msg string) {
	if o.format == FormatJSON {
		o.json("message", msg)
		return
	}
	fmt.Fprintln(o.w, msg)
}

// Help renders the list of command usages.
func (o *Output) Help(usages []string) {
	if o.format == FormatJSON {
		o.json("help", usages)
		return
	}
	fmt.Fprintln(o.w, "Comandos:")
	for _, u := range usages {
		fmt.Fprintf(o.w, "  %s\n", u)
	}
}

// Draft renders the form's current draft.
func (o *Output) Draft(d types.Draft) {
	if o.format == FormatJSON {
		o.json("draft", d)
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	for _, kv := range [][2]string{
		{string(form.FieldName), d.Name},
		{string(form.FieldAge), d.Age},
		{string(form.FieldBelt), d.Belt},
		{string(form.FieldBloodType), d.BloodType},
		{string(form.FieldPhone), d.Phone},
		{string(form.FieldAddress), d.Address},
		{string(form.FieldObservations), d.Observations},
	} {
		fmt.Fprintf(tw, "%s\t%q\n", kv[0], kv[1])
	}
	tw.Flush()
}

// Fields renders the form inputs and their options.
func (o *Output) Fields(fields []form.FieldSpec) {
	if o.format == FormatJSON {
		o.json("fields", fields)
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Field, f.Label, strings.Join(f.Options, ", "))
	}
	tw.Flush()
}

// Summary renders the student list, or the empty-state placeholder.
func (o *Output) Summary(s table.Summary) {
	if o.format == FormatJSON {
		o.json("summary", s)
		return
	}
	fmt.Fprintf(o.w, "%s (%s)\n", s.Title, s.Badge)
	if s.Empty {
		for _, line := range s.Placeholder {
			fmt.Fprintf(o.w, "  %s\n", line)
		}
		return
	}

	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNome Completo\tIdade\tGraduação\tTipo Sang.\tCelular\tID")
	for i, row := range s.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, strings.Join(row.Cells(), "\t"), row.ID)
	}
	tw.Flush()
}

// Detail renders the selected student.
func (o *Output) Detail(d table.Detail) {
	if o.format == FormatJSON {
		o.json("detail", d)
		return
	}
	fmt.Fprintln(o.w, "Dados do Aluno")
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	for _, kv := range [][2]string{
		{"Nome Completo", d.Name},
		{"Idade", d.Age},
		{"Graduação", d.Belt},
		{"Tipo Sanguíneo", d.BloodType},
		{"Celular", d.Phone},
		{"Endereço Completo", d.Address},
		{"Observações", d.Observations},
	} {
		fmt.Fprintf(tw, "  %s\t%s\n", kv[0], kv[1])
	}
	tw.Flush()
	fmt.Fprintf(o.w, "  Data de matrícula: %s\n", d.EnrollmentDate)
}
