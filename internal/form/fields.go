package form

// Field names a draft input.
type Field string

const (
	FieldName         Field = "name"
	FieldAge          Field = "age"
	FieldBelt         Field = "belt"
	FieldBloodType    Field = "bloodType"
	FieldPhone        Field = "phone"
	FieldAddress      Field = "address"
	FieldObservations Field = "observations"
)

// FieldSpec describes how a host should render one input.
type FieldSpec struct {
	Field       Field    `json:"field"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder"`
	Kind        string   `json:"kind"` // text, number, tel, select or textarea
	Required    bool     `json:"required"`
	Min         int      `json:"min,omitempty"`
	Max         int      `json:"max,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// Age bounds are input constraints only; Submit does not enforce them.
const (
	MinAge = 3
	MaxAge = 100
)

// Fields lists the form inputs in display order.
func (f *Form) Fields() []FieldSpec {
	return []FieldSpec{
		{Field: FieldName, Label: "Nome Completo *", Placeholder: "Digite o nome completo do aluno", Kind: "text", Required: true},
		{Field: FieldAge, Label: "Idade *", Placeholder: "Ex: 25", Kind: "number", Required: true, Min: MinAge, Max: MaxAge},
		{Field: FieldBelt, Label: "Graduação (Faixa) *", Placeholder: "Selecione a faixa", Kind: "select", Required: true, Options: f.catalog.Belts},
		{Field: FieldBloodType, Label: "Tipo Sanguíneo", Placeholder: "Selecione o tipo", Kind: "select", Options: f.catalog.BloodTypes},
		{Field: FieldPhone, Label: "Número de Celular", Placeholder: "(00) 00000-0000", Kind: "tel"},
		{Field: FieldAddress, Label: "Endereço Completo", Placeholder: "Rua, número, bairro, cidade, estado", Kind: "text"},
		{Field: FieldObservations, Label: "Observações", Placeholder: "Informações adicionais sobre o aluno (ex: restrições, medicamentos, etc.)", Kind: "textarea"},
	}
}
