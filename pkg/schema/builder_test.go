package schema_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/schema"
)

type rawPair struct {
	A string `json:"a"`
	B string `json:"b"`
}

type pair struct {
	A string `json:"a"`
	B int    `json:"b"`
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("builds a valid schema", func(t *testing.T) {
		t.Parallel()
		s, err := schema.NewBuilder[rawPair, pair]("pair").
			Field("b", schema.TryMap("parse_int", strconv.Atoi)).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "pair", s.Name())
		assert.Equal(t, "schema_test.rawPair", s.RawType().String())
		assert.Equal(t, "schema_test.pair", s.ValidType().String())
	})

	t.Run("rejects non struct records", func(t *testing.T) {
		t.Parallel()
		_, err := schema.NewBuilder[string, int]("scalar").Build()
		require.ErrorIs(t, err, schema.ErrInvalidRecord)
		assert.True(t, schema.IsSchemaError(err))
	})

	t.Run("rejects unpaired fields", func(t *testing.T) {
		t.Parallel()
		type validOnlyA struct {
			A string `json:"a"`
		}
		_, err := schema.NewBuilder[rawPair, validOnlyA]("arity").Build()
		require.ErrorIs(t, err, schema.ErrFieldArity)

		var se *schema.SchemaError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "b", se.Field)
		assert.Equal(t, "arity", se.Schema)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()
		_, err := schema.NewBuilder[rawPair, rawPair]("unknown").
			Field("c", schema.Map("trim", strings.TrimSpace)).
			Build()
		require.ErrorIs(t, err, schema.ErrUnknownField)
		assert.Contains(t, err.Error(), `field "c"`)
	})

	t.Run("rejects hiding unknown fields", func(t *testing.T) {
		t.Parallel()
		_, err := schema.NewBuilder[rawPair, rawPair]("hide").Hide("secret").Build()
		require.ErrorIs(t, err, schema.ErrUnknownField)
	})

	t.Run("rejects fields declared twice", func(t *testing.T) {
		t.Parallel()
		_, err := schema.NewBuilder[rawPair, rawPair]("dup").
			Field("a").
			Field("a").
			Build()
		require.ErrorIs(t, err, schema.ErrDuplicateField)
	})

	t.Run("rejects records reusing a key", func(t *testing.T) {
		t.Parallel()
		type clash struct {
			A string `json:"a"`
			B string `valid:"a"`
		}
		_, err := schema.NewBuilder[clash, clash]("clash").Build()
		require.ErrorIs(t, err, schema.ErrDuplicateField)
	})

	t.Run("rejects a step that does not accept the running type", func(t *testing.T) {
		t.Parallel()
		_, err := schema.NewBuilder[rawPair, pair]("mismatch").
			Field("b",
				schema.Check("positive", func(n int) bool { return n > 0 }),
				schema.TryMap("parse_int", strconv.Atoi),
			).
			Build()
		require.ErrorIs(t, err, schema.ErrTypeMismatch)
		assert.Contains(t, err.Error(), `"positive"`)
	})

	t.Run("rejects a chain ending with the wrong type", func(t *testing.T) {
		t.Parallel()
		_, err := schema.NewBuilder[rawPair, pair]("final").Build()
		require.ErrorIs(t, err, schema.ErrTypeMismatch)

		var se *schema.SchemaError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "b", se.Field)
	})

	t.Run("rejects forwarding to a schema with another raw type", func(t *testing.T) {
		t.Parallel()
		inner := schema.NewBuilder[rawAge, age]("age").
			Field("age", schema.TryMap("parse_int", strconv.Atoi)).
			MustBuild()
		_, err := schema.NewBuilder[rawPair, rawPair]("forward").
			Field("a", schema.Forward(inner)).
			Build()
		require.ErrorIs(t, err, schema.ErrTypeMismatch)
	})

	t.Run("accepts steps over implemented interfaces", func(t *testing.T) {
		t.Parallel()
		type rawErr struct {
			Err *strconv.NumError
		}
		type validErr struct {
			Err string
		}
		s, err := schema.NewBuilder[rawErr, validErr]("iface").
			Field("Err",
				schema.Check("not nil", func(e error) bool { return e != nil }),
				schema.Map("message", func(e error) string { return e.Error() }),
			).
			Build()
		require.NoError(t, err)

		_, parseErr := strconv.Atoi("x")
		var numErr *strconv.NumError
		require.ErrorAs(t, parseErr, &numErr)

		got, err := s.Validate(rawErr{Err: numErr})
		require.NoError(t, err)
		assert.Equal(t, numErr.Error(), got.Err)
	})

	t.Run("rejects non validator struct checks", func(t *testing.T) {
		t.Parallel()
		_, err := schema.NewBuilder[rawPair, rawPair]("pre").
			Pre(schema.Map("noop", func(r rawPair) rawPair { return r })).
			Build()
		require.ErrorIs(t, err, schema.ErrInvalidCheck)
	})

	t.Run("rejects struct checks over the wrong record", func(t *testing.T) {
		t.Parallel()
		_, err := schema.NewBuilder[rawPair, pair]("post").
			Field("b", schema.TryMap("parse_int", strconv.Atoi)).
			Post(schema.Check("raw", func(r rawPair) bool { return true })).
			Build()
		require.ErrorIs(t, err, schema.ErrInvalidCheck)
	})

	t.Run("rejects zero operations", func(t *testing.T) {
		t.Parallel()
		_, err := schema.NewBuilder[rawPair, rawPair]("zero").
			Field("a", schema.Operation{}).
			Build()
		require.ErrorIs(t, err, schema.ErrInvalidCheck)
	})

	t.Run("reports every mistake at once", func(t *testing.T) {
		t.Parallel()
		_, err := schema.NewBuilder[rawPair, pair]("many").
			Field("c").
			Pre(schema.Check("int", func(int) bool { return true })).
			Build()
		assert.ErrorIs(t, err, schema.ErrUnknownField)
		assert.ErrorIs(t, err, schema.ErrTypeMismatch)
		assert.ErrorIs(t, err, schema.ErrInvalidCheck)
	})
}

func TestBuilder_MustBuild(t *testing.T) {
	t.Parallel()

	t.Run("panics on definition errors", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			schema.NewBuilder[rawPair, pair]("broken").MustBuild()
		})
	})

	t.Run("returns the schema otherwise", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() {
			schema.NewBuilder[rawPair, rawPair]("fine").MustBuild()
		})
	})
}

func TestFieldKeys(t *testing.T) {
	t.Parallel()

	type raw struct {
		Tagged  string `valid:"custom" json:"ignored"`
		JSON    string `json:"json_name,omitempty"`
		Dash    string `json:"-"`
		Plain   string
		private string //nolint:unused
	}

	s := schema.NewBuilder[raw, raw]("keys").MustBuild()
	keys := make([]string, 0)
	for _, f := range s.Fields() {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"custom", "json_name", "Dash", "Plain"}, keys)
}
