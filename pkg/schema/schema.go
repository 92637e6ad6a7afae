package schema

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/docnum/pkg/numfmt"
	"github.com/dmitrymomot/docnum/pkg/validator"
)

// Field binds a document field to its number format.
type Field struct {
	Name     string
	Format   *numfmt.Validator
	Required bool
}

// Schema is an immutable set of numeric document fields.
type Schema struct {
	fields map[string]Field
	names  []string
}

type schemaDocument struct {
	Fields map[string]fieldDocument `yaml:"fields"`
}

type fieldDocument struct {
	Format   string `yaml:"format"`
	Required bool   `yaml:"required"`
}

// New builds a schema from fields. Field names must be unique and non-empty.
func New(fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	s := &Schema{
		fields: make(map[string]Field, len(fields)),
		names:  make([]string, 0, len(fields)),
	}
	for _, f := range fields {
		switch {
		case f.Name == "":
			return nil, fmt.Errorf("%w: empty field name", ErrInvalidSchema)
		case f.Format == nil:
			return nil, fmt.Errorf("%w: field %q has no format", ErrInvalidSchema, f.Name)
		}
		if _, ok := s.fields[f.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, f.Name)
		}
		s.fields[f.Name] = f
		s.names = append(s.names, f.Name)
	}
	slices.Sort(s.names)

	return s, nil
}

// Load decodes a YAML schema document of the form
//
//	fields:
//	  total:
//	    format: N(17,2)
//	    required: true
//	  quantity:
//	    format: N(10)+
func Load(r io.Reader) (*Schema, error) {
	var doc schemaDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoFields
		}
		return nil, errors.Join(ErrInvalidSchema, err)
	}

	fields := make([]Field, 0, len(doc.Fields))
	for name, fd := range doc.Fields {
		format, err := numfmt.Parse(fd.Format)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidSchema, name, err)
		}
		fields = append(fields, Field{Name: name, Format: format, Required: fd.Required})
	}

	return New(fields...)
}

// LoadFile reads a YAML schema document from path.
func LoadFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Fields returns the field names in sorted order.
func (s *Schema) Fields() []string {
	return slices.Clone(s.names)
}

// Field returns the named field.
func (s *Schema) Field(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Validate checks values against the schema and returns
// validator.ValidationErrors describing every failing field, or nil.
// Missing required fields, inadmissible numbers and fields unknown to the
// schema are all reported.
func (s *Schema) Validate(values map[string]string) error {
	rules := make([]validator.Rule, 0, len(s.names)+len(values))

	for _, name := range s.names {
		f := s.fields[name]
		value, present := values[name]
		switch {
		case !present && f.Required:
			rules = append(rules, validator.RequiredString(name, value))
		case present && f.Required:
			rules = append(rules, validator.NumberFormat(name, value, f.Format))
		case present:
			rules = append(rules, validator.OptionalNumberFormat(name, value, f.Format))
		}
	}

	unknown := make([]string, 0)
	for name := range values {
		if _, ok := s.fields[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	for _, name := range unknown {
		rules = append(rules, validator.UnknownField(name))
	}

	return validator.Apply(rules...)
}

// DecodeValues reads a flat YAML mapping of field names to values. Scalars are
// kept as written, so 1.50 stays "1.50".
func DecodeValues(r io.Reader) (map[string]string, error) {
	values := map[string]string{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidValues, err)
	}
	return values, nil
}
