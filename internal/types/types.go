// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles: form,
// table, roster and storage can all import types without depending on
// each other.
package types

// Student is a registered student as owned by the roster.
//
// The ID is assigned by the owner when the record is added and never
// changes afterwards. EnrollmentDate is a calendar date in YYYY-MM-DD form.
type Student struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Belt           string `json:"belt"`
	BloodType      string `json:"bloodType"`
	Phone          string `json:"phone"`
	Observations   string `json:"observations"`
	Address        string `json:"address"`
	EnrollmentDate string `json:"enrollmentDate"`
}

// NewStudent is a normalized student record that has not been given an
// ID yet. The form emits it; the owner turns it into a Student.
type NewStudent struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Belt           string `json:"belt"`
	BloodType      string `json:"bloodType"`
	Phone          string `json:"phone"`
	Observations   string `json:"observations"`
	Address        string `json:"address"`
	EnrollmentDate string `json:"enrollmentDate"`
}

// WithID returns the Student identified by id.
func (n NewStudent) WithID(id string) Student {
	return Student{
		ID:             id,
		Name:           n.Name,
		Age:            n.Age,
		Belt:           n.Belt,
		BloodType:      n.BloodType,
		Phone:          n.Phone,
		Observations:   n.Observations,
		Address:        n.Address,
		EnrollmentDate: n.EnrollmentDate,
	}
}

// Draft is the form's in-progress input. Every field is raw text exactly
// as typed or selected.
//
// validate:"..." tags are checked by go-playground/validator against a
// trimmed copy of the draft; the draft itself is never modified by
// validation.
type Draft struct {
	Name         string `json:"name"         validate:"required"`
	Age          string `json:"age"          validate:"required,numeric"`
	Belt         string `json:"belt"         validate:"required"`
	BloodType    string `json:"bloodType"`
	Phone        string `json:"phone"`
	Observations string `json:"observations"`
	Address      string `json:"address"`
}

// IsEmpty reports whether every draft field is empty.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}
