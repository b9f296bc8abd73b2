// Package dashboard holds the view-state layer shared by the student and
// admin dashboards: the modal form controller, tab navigation with course
// drill-down, the BMI calculator and the derived stat blocks.
package dashboard

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/dikshafoundation/diksha/core"
)

var (
	// errors
	ErrUnknownForm  = errors.New("unknown form")
	ErrUnknownField = errors.New("unknown form field")
	ErrNoOpenForm   = errors.New("no open form")

	errRequiredFields = errors.New("required fields are missing")
)

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
)

type FormField struct {
	Name     string
	Kind     FieldKind
	Required bool
}

// Draft is the input buffer of one open form. Every recognized field is
// pre-populated on Open so downstream readers never see a missing key.
type Draft map[string]interface{}

func (d Draft) Text(name string) string {
	s, _ := d[name].(string)
	return s
}

func (d Draft) Number(name string) float64 {
	n, _ := d[name].(float64)
	return n
}

func (d Draft) Int(name string) int { return int(d.Number(name)) }

// SubmitFunc hands a finished draft to the owning service, which appends
// the synthesized record to its collection.
type SubmitFunc func(draft Draft) error

type FormSpec struct {
	Entity string
	Fields []FormField
	Submit SubmitFunc
}

// FormController drives the modal lifecycle:
// Closed -> Open -> (Cancelled -> Closed) | (Submitted -> Closed).
// At most one form is open per dashboard instance; opening another
// replaces the current one so the "exactly one open" invariant holds.
type FormController struct {
	specs map[string]FormSpec
	open  string // entity of the open form; "" when closed
	draft Draft
}

func NewFormController(specs ...FormSpec) *FormController {
	fc := &FormController{specs: make(map[string]FormSpec, len(specs))}
	for _, spec := range specs {
		fc.specs[spec.Entity] = spec
	}
	return fc
}

// Open transitions to the entity's form with a freshly reset draft,
// replacing any form already open.
func (fc *FormController) Open(entity string) error {
	spec, ok := fc.specs[entity]
	if !ok {
		return errors.Wrap(ErrUnknownForm, entity)
	}

	draft := make(Draft, len(spec.Fields))
	for _, fld := range spec.Fields {
		switch fld.Kind {
		case FieldNumber:
			draft[fld.Name] = float64(0)
		default:
			draft[fld.Name] = ""
		}
	}
	fc.open = entity
	fc.draft = draft
	return nil
}

// OpenForm reports which form is open, if any.
func (fc *FormController) OpenForm() (string, bool) {
	return fc.open, fc.open != ""
}

// SetField writes one field of the draft buffer. Numeric fields coerce
// the raw input, defaulting to 0 on parse failure; the form never fails
// on a field edit.
func (fc *FormController) SetField(name, value string) error {
	if fc.open == "" {
		return ErrNoOpenForm
	}
	fld, ok := fc.field(name)
	if !ok {
		return errors.Wrap(ErrUnknownField, name)
	}

	switch fld.Kind {
	case FieldNumber:
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			n = 0
		}
		fc.draft[name] = n
	default:
		fc.draft[name] = value
	}
	return nil
}

// Field reads back one draft value.
func (fc *FormController) Field(name string) (interface{}, bool) {
	v, ok := fc.draft[name]
	return v, ok
}

// Submit validates that every required field is filled, hands the draft
// to the form's submit hook and closes the form. On a validation error
// the draft is kept and the form stays open.
func (fc *FormController) Submit() error {
	if fc.open == "" {
		return ErrNoOpenForm
	}
	spec := fc.specs[fc.open]

	var fldErrs []core.FieldError
	for _, fld := range spec.Fields {
		if fld.Required && fld.Kind == FieldText && strings.TrimSpace(fc.draft.Text(fld.Name)) == "" {
			fldErrs = append(fldErrs, core.FieldError{Field: fld.Name, Error: "this field is required"})
		}
	}
	if fldErrs != nil {
		return core.NewValidationError(errRequiredFields, fldErrs...)
	}

	if err := spec.Submit(fc.draft); err != nil {
		if _, ok := errors.Cause(err).(*core.ValidationError); ok {
			return err
		}
		return errors.Wrapf(err, "submitting %s form", spec.Entity)
	}

	fc.close()
	return nil
}

// Cancel discards the draft buffer; no collection is touched.
func (fc *FormController) Cancel() {
	fc.close()
}

func (fc *FormController) close() {
	fc.open = ""
	fc.draft = nil
}

func (fc *FormController) field(name string) (FormField, bool) {
	for _, fld := range fc.specs[fc.open].Fields {
		if fld.Name == name {
			return fld, true
		}
	}
	return FormField{}, false
}
