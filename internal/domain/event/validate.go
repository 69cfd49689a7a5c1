package event

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	MsgTituloRequired = "Título é obrigatório"
	MsgCatRequired    = "Categoria é obrigatória"
	MsgDataInvalid    = "Data inválida"
	MsgHoraRequired   = "Hora é obrigatória"
	MsgLocalRequired  = "Local é obrigatória"
	MsgPrecoNaN       = "Invalid input: expected number, received NaN"
	MsgImgInvalid     = "Imagem deve ser uma URL válida"
	MsgDescRequired   = "Descrição é obrigatória"

	// PrecoGratuito is the literal price that means a free event.
	PrecoGratuito = "Gratuito"
)

// accepted layouts for data, tried in order
var dateLayouts = []string{
	time.DateOnly,
	"2006/01/02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.DateTime,
	time.RFC3339,
	time.RFC3339Nano,
}

var validate = validator.New()

// rule binds one field of the raw input to its check. A check writes the
// normalized value into out and returns "" or the failure message.
type rule struct {
	path  string
	check func(raw RawEventInput, out *ValidatedEvent) string
}

var rules = []rule{
	{"titulo", func(raw RawEventInput, out *ValidatedEvent) string {
		return requiredText(raw.Titulo, &out.Titulo, MsgTituloRequired)
	}},
	{"cat", func(raw RawEventInput, out *ValidatedEvent) string {
		return requiredText(raw.Cat, &out.Cat, MsgCatRequired)
	}},
	{"data", func(raw RawEventInput, out *ValidatedEvent) string {
		d, ok := ParseDate(raw.Data.String())
		if !ok {
			return MsgDataInvalid
		}
		out.Data = d
		return ""
	}},
	{"hora", func(raw RawEventInput, out *ValidatedEvent) string {
		return requiredText(raw.Hora, &out.Hora, MsgHoraRequired)
	}},
	{"local", func(raw RawEventInput, out *ValidatedEvent) string {
		return requiredText(raw.Local, &out.Local, MsgLocalRequired)
	}},
	{"preco", func(raw RawEventInput, out *ValidatedEvent) string {
		p, ok := ParsePreco(raw.Preco.String())
		if !ok {
			return MsgPrecoNaN
		}
		out.Preco = p
		return ""
	}},
	{"img", func(raw RawEventInput, out *ValidatedEvent) string {
		img := strings.TrimSpace(raw.Img.String())
		if validate.Var(img, "required,url") != nil {
			return MsgImgInvalid
		}
		out.Img = img
		return ""
	}},
	{"desc", func(raw RawEventInput, out *ValidatedEvent) string {
		return requiredText(raw.Desc, &out.Desc, MsgDescRequired)
	}},
}

func requiredText(raw RawField, out *string, msg string) string {
	s := strings.TrimSpace(raw.String())
	if validate.Var(s, "required") != nil {
		return msg
	}
	*out = s
	return ""
}

// ParseDate reads a calendar date (optionally with a time of day) and
// returns it in UTC. Out of range components are rejected.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// ParsePreco maps "Gratuito" to 0 and otherwise requires a finite,
// non-negative decimal number.
func ParsePreco(s string) (float64, bool) {
	if s == PrecoGratuito {
		return 0, true
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}

	return f, true
}

// Result is either a ValidatedEvent or the list of field errors that
// prevented one, never both.
type Result struct {
	Event  ValidatedEvent
	Errors []FieldError
}

func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Err returns a *ValidationError when validation failed, nil otherwise.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &ValidationError{Errors: r.Errors}
}

type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Path+": "+fe.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Validate runs every field rule, in field order, without stopping at the
// first failure.
func Validate(raw RawEventInput) Result {
	var (
		out  ValidatedEvent
		errs []FieldError
	)

	for _, r := range rules {
		if msg := r.check(raw, &out); msg != "" {
			errs = append(errs, FieldError{Path: r.path, Message: msg})
		}
	}

	if len(errs) > 0 {
		return Result{Errors: errs}
	}

	return Result{Event: out}
}
