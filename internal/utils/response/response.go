// Package response provides the notices shown to the user after an action
// and a helper for writing views as JSON.
//
// A Notice is what a host renders as a toast: a title, a description and
// a variant telling it whether the message is an error.
package response

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Notice is the standard acknowledgement envelope.
//
//	{ "variant": "destructive", "title": "Campos obrigatórios", "description": "..." }
type Notice struct {
	Variant     string `json:"variant"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Destructive reports whether the notice describes a failure.
func (n Notice) Destructive() bool {
	return n.Variant == VariantDestructive
}

// WriteJSON writes data to w as indented JSON followed by a newline.
func WriteJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Success builds a non-destructive notice.
func Success(title, description string) Notice {
	return Notice{
		Variant:     VariantDefault,
		Title:       title,
		Description: description,
	}
}

// GeneralError wraps any Go error into a destructive notice.
func GeneralError(err error) Notice {
	return Notice{
		Variant:     VariantDestructive,
		Title:       "Erro",
		Description: err.Error(),
	}
}

const (
	requiredTitle       = "Campos obrigatórios"
	requiredDescription = "Preencha nome, idade e graduação."
)

// ValidationError converts the validator's field errors into a single
// destructive notice. Missing required fields collapse into one sentence.
func ValidationError(errs validator.ValidationErrors) Notice {
	var (
		messages []string
		required bool
	)

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			if !required {
				required = true
				messages = append([]string{requiredDescription}, messages...)
			}
		case "numeric":
			messages = append(messages, fieldLabel(e.Field())+" deve ser um número.")
		default:
			messages = append(messages, fieldLabel(e.Field())+" é inválido.")
		}
	}

	title := requiredTitle
	if !required {
		title = "Dados inválidos"
	}

	return Notice{
		Variant:     VariantDestructive,
		Title:       title,
		Description: strings.Join(messages, " "),
	}
}

func fieldLabel(field string) string {
	switch field {
	case "Name":
		return "Nome"
	case "Age":
		return "Idade"
	case "Belt":
		return "Graduação"
	default:
		return field
	}
}
