package schema_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docnum/pkg/numfmt"
	"github.com/dmitrymomot/docnum/pkg/schema"
	"github.com/dmitrymomot/docnum/pkg/validator"
)

const inventorySchema = `
fields:
  total:
    format: N(17,2)+
    required: true
  correction:
    format: N(17.2)
  pages:
    format: N(4)+
`

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads fields", func(t *testing.T) {
		s, err := schema.Load(strings.NewReader(inventorySchema))
		require.NoError(t, err)
		assert.Equal(t, []string{"correction", "pages", "total"}, s.Fields())

		total, ok := s.Field("total")
		require.True(t, ok)
		assert.True(t, total.Required)
		assert.Equal(t, "N(17,2)+", total.Format.String())

		pages, ok := s.Field("pages")
		require.True(t, ok)
		assert.False(t, pages.Required)
		assert.Equal(t, 0, pages.Format.Scale())
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := schema.Load(strings.NewReader(""))
		assert.ErrorIs(t, err, schema.ErrNoFields)
	})

	t.Run("no fields", func(t *testing.T) {
		_, err := schema.Load(strings.NewReader("fields: {}\n"))
		assert.ErrorIs(t, err, schema.ErrNoFields)
	})

	t.Run("invalid notation", func(t *testing.T) {
		_, err := schema.Load(strings.NewReader("fields:\n  total:\n    format: X(1)\n"))
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
		assert.ErrorIs(t, err, numfmt.ErrInvalidNotation)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		_, err := schema.Load(strings.NewReader("fields:\n  total:\n    format: N(2,2)\n"))
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
		assert.ErrorIs(t, err, numfmt.ErrInvalidConfiguration)
	})

	t.Run("unknown keys", func(t *testing.T) {
		_, err := schema.Load(strings.NewReader("fields:\n  total:\n    format: N(2)\n    scale: 1\n"))
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(inventorySchema), 0o600))

	s, err := schema.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Fields(), 3)

	_, err = schema.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	t.Parallel()

	format := numfmt.MustNew(5, 2, false)

	_, err := schema.New()
	assert.ErrorIs(t, err, schema.ErrNoFields)

	_, err = schema.New(schema.Field{Name: "", Format: format})
	assert.ErrorIs(t, err, schema.ErrInvalidSchema)

	_, err = schema.New(schema.Field{Name: "total"})
	assert.ErrorIs(t, err, schema.ErrInvalidSchema)

	_, err = schema.New(schema.Field{Name: "total", Format: format}, schema.Field{Name: "total", Format: format})
	assert.ErrorIs(t, err, schema.ErrInvalidSchema)
}

func TestSchema_Validate(t *testing.T) {
	t.Parallel()

	s, err := schema.Load(strings.NewReader(inventorySchema))
	require.NoError(t, err)

	t.Run("valid document", func(t *testing.T) {
		err := s.Validate(map[string]string{
			"total":      "1500.00",
			"correction": "-12,50",
			"pages":      "12",
		})
		assert.NoError(t, err)
	})

	t.Run("optional fields may be absent or empty", func(t *testing.T) {
		assert.NoError(t, s.Validate(map[string]string{"total": "1", "pages": ""}))
	})

	t.Run("reports every failing field", func(t *testing.T) {
		err := s.Validate(map[string]string{
			"correction": "1.234",
			"pages":      "-1",
			"comment":    "7",
		})
		require.Error(t, err)
		require.True(t, validator.IsValidationError(err))

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"correction", "pages", "total", "comment"}, errs.Fields())
		assert.Equal(t, "validation.required", errs.GetErrors("total")[0].TranslationKey)
		assert.Equal(t, "validation.number_format", errs.GetErrors("pages")[0].TranslationKey)
		assert.Equal(t, "validation.unknown_field", errs.GetErrors("comment")[0].TranslationKey)
	})

	t.Run("required field present but empty", func(t *testing.T) {
		err := s.Validate(map[string]string{"total": ""})
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message, "value is empty")
	})
}

func TestDecodeValues(t *testing.T) {
	t.Parallel()

	values, err := schema.DecodeValues(strings.NewReader("total: 1.50\ncorrection: \"-2,5\"\npages: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"total": "1.50", "correction": "-2,5", "pages": "3"}, values)

	values, err = schema.DecodeValues(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, values)

	_, err = schema.DecodeValues(strings.NewReader("- a\n- b\n"))
	assert.ErrorIs(t, err, schema.ErrInvalidValues)
}
