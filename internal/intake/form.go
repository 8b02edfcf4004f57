package intake

import "strings"

// Form mirrors the fields of the contact form.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (f Form) trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Message: strings.TrimSpace(f.Message),
	}
}

// Complete reports whether every required field is filled.
func (f Form) Complete() bool {
	t := f.trimmed()
	return t.Name != "" && t.Email != "" && t.Message != ""
}

func (f *Form) Reset() {
	*f = Form{}
}

type ModalKind string

const (
	ModalSuccess ModalKind = "success"
	ModalError   ModalKind = "error"
)

// Modal is the result shown to the visitor after a submit.
type Modal struct {
	Kind         ModalKind
	Title        string
	Body         string
	ContactEmail string
}

func (m Modal) OK() bool {
	return m.Kind == ModalSuccess
}
