package schema_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/schema"
)

type rawAge struct {
	Age string `json:"age"`
}

type age struct {
	Age int `json:"age"`
}

func ageSchema(t *testing.T, opts ...schema.Option) *schema.Schema[rawAge, age] {
	t.Helper()
	s, err := schema.NewBuilder[rawAge, age]("age", opts...).
		Field("age",
			schema.TryMap("parse_int", strconv.Atoi),
			schema.Check("age >= 0", func(n int) bool { return n >= 0 }),
		).
		Build()
	require.NoError(t, err)
	return s
}

type rawProfile struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type profile struct {
	Name string `json:"name"`
	Code int    `json:"code"`
}

type rawSignup struct {
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Confirm  string       `json:"confirm"`
	Extra    string       `json:"extra"`
	Profile  rawProfile   `json:"profile"`
	Friends  []rawProfile `json:"friends"`
}

type signup struct {
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Confirm  string    `json:"confirm"`
	Extra    int       `json:"extra"`
	Profile  profile   `json:"profile"`
	Friends  []profile `json:"friends"`
}

func profileSchema(t *testing.T) *schema.Schema[rawProfile, profile] {
	t.Helper()
	s, err := schema.NewBuilder[rawProfile, profile]("profile").
		Field("name",
			schema.Map("trim", strings.TrimSpace),
			schema.Check("name != \"\"", func(s string) bool { return s != "" }).WithMessage("name is required"),
		).
		Field("code",
			schema.TryMap("parse_int", strconv.Atoi),
			schema.Check("code <= 10", func(n int) bool { return n <= 10 }),
		).
		Build()
	require.NoError(t, err)
	return s
}

func signupSchema(t *testing.T, opts ...schema.Option) *schema.Schema[rawSignup, signup] {
	t.Helper()
	p := profileSchema(t)
	s, err := schema.NewBuilder[rawSignup, signup]("signup", opts...).
		Pre(schema.Check("password == confirm", func(r rawSignup) bool {
			return r.Password == r.Confirm
		}).WithMessage("passwords do not match")).
		Field("email", schema.Check("contains @", func(s string) bool {
			return strings.Contains(s, "@")
		}).WithMessage("invalid email")).
		Field("password", schema.Check("len >= 8", func(s string) bool {
			return len(s) >= 8
		})).
		Field("extra",
			schema.Map("trim", strings.TrimSpace),
			schema.TryMap("parse_int", strconv.Atoi),
		).
		Field("profile", schema.Forward(p)).
		Field("friends", schema.ForwardEach(p)).
		Hide("password", "confirm").
		Post(
			schema.Check("extra < profile.code", func(v signup) bool {
				return v.Extra < v.Profile.Code
			}).WithMessage("extra must be below the profile code"),
			schema.Check("email not in password", func(v signup) bool {
				return !strings.Contains(v.Password, v.Email)
			}),
		).
		Build()
	require.NoError(t, err)
	return s
}

func validSignup() rawSignup {
	return rawSignup{
		Email:    "jane@example.com",
		Password: "correct-horse",
		Confirm:  "correct-horse",
		Extra:    " 1 ",
		Profile:  rawProfile{Name: " Jane ", Code: "7"},
		Friends:  []rawProfile{{Name: "Bob", Code: "3"}},
	}
}

func requireValidationError(t *testing.T, err error) *schema.ValidationError {
	t.Helper()
	require.Error(t, err)
	verr, ok := schema.AsValidationError(err)
	require.True(t, ok, "expected *schema.ValidationError, got %T", err)
	return verr
}

func TestSchema_Validate_Age(t *testing.T) {
	t.Parallel()
	s := ageSchema(t)

	t.Run("valid value is parsed", func(t *testing.T) {
		t.Parallel()
		got, err := s.Validate(rawAge{Age: "42"})
		require.NoError(t, err)
		assert.Equal(t, age{Age: 42}, got)
	})

	t.Run("negative value fails the predicate", func(t *testing.T) {
		t.Parallel()
		got, err := s.Validate(rawAge{Age: "-5"})
		verr := requireValidationError(t, err)

		assert.Equal(t, age{}, got)
		require.Len(t, verr.FieldFailures, 1)
		assert.Empty(t, verr.TransformFailures)

		f := verr.FieldFailures[0]
		assert.Equal(t, "age", f.Field)
		assert.Equal(t, "age", f.Path)
		assert.Equal(t, "-5", f.Value)
		assert.Equal(t, "int", f.TypeName)
		assert.Equal(t, "age >= 0", f.Expr)
		assert.True(t, f.Cause.IsPredicateFalse())
		assert.NotEmpty(t, f.Location)
	})

	t.Run("non numeric value fails the transform", func(t *testing.T) {
		t.Parallel()
		_, err := s.Validate(rawAge{Age: "abc"})
		verr := requireValidationError(t, err)

		assert.Empty(t, verr.FieldFailures)
		require.Len(t, verr.TransformFailures, 1)

		f := verr.TransformFailures[0]
		assert.Equal(t, "age", f.Path)
		assert.Equal(t, `"abc"`, f.Value)
		assert.Equal(t, "string", f.SourceType)
		assert.Equal(t, "int", f.TargetType)
		assert.ErrorIs(t, f.Cause, strconv.ErrSyntax)
		assert.ErrorIs(t, err, strconv.ErrSyntax)
	})

	t.Run("repeated validation gives the same result", func(t *testing.T) {
		t.Parallel()
		_, first := s.Validate(rawAge{Age: "-5"})
		_, second := s.Validate(rawAge{Age: "-5"})
		assert.Equal(t, first, second)

		ok1, err := s.Validate(rawAge{Age: "7"})
		require.NoError(t, err)
		ok2, err := s.Validate(rawAge{Age: "7"})
		require.NoError(t, err)
		assert.Equal(t, ok1, ok2)
	})
}

func TestSchema_Validate_Signup(t *testing.T) {
	t.Parallel()
	s := signupSchema(t)

	t.Run("builds the validated record", func(t *testing.T) {
		t.Parallel()
		got, err := s.Validate(validSignup())
		require.NoError(t, err)
		assert.Equal(t, signup{
			Email:    "jane@example.com",
			Password: "correct-horse",
			Confirm:  "correct-horse",
			Extra:    1,
			Profile:  profile{Name: "Jane", Code: 7},
			Friends:  []profile{{Name: "Bob", Code: 3}},
		}, got)
	})

	t.Run("pre check short circuits the field phase", func(t *testing.T) {
		t.Parallel()
		raw := validSignup()
		raw.Confirm = "different"
		raw.Email = "broken"
		raw.Extra = "x"

		_, err := s.Validate(raw)
		verr := requireValidationError(t, err)

		require.Equal(t, 1, verr.Len())
		f := verr.FieldFailures[0]
		assert.Equal(t, schema.MetaField, f.Field)
		assert.Equal(t, schema.MetaField, f.Path)
		assert.Equal(t, schema.MetaField, f.Value)
		assert.Equal(t, "passwords do not match", f.Message)
		assert.Contains(t, f.TypeName, "rawSignup")
	})

	t.Run("single failing field reports exactly one failure", func(t *testing.T) {
		t.Parallel()
		raw := validSignup()
		raw.Email = "broken"

		_, err := s.Validate(raw)
		verr := requireValidationError(t, err)

		require.Equal(t, 1, verr.Len())
		assert.Equal(t, "email", verr.FieldFailures[0].Path)
		assert.Equal(t, "invalid email", verr.FieldFailures[0].Message)
	})

	t.Run("failures follow declaration order", func(t *testing.T) {
		t.Parallel()
		raw := validSignup()
		raw.Email = "broken"
		raw.Password = "short"
		raw.Confirm = "short"
		raw.Profile.Code = "99"

		_, err := s.Validate(raw)
		verr := requireValidationError(t, err)

		assert.Equal(t, []string{"email", "password", "profile.code"}, verr.Paths())
	})

	t.Run("field phase failure skips post checks", func(t *testing.T) {
		t.Parallel()
		raw := validSignup()
		raw.Extra = "100"
		raw.Profile.Name = "   "

		_, err := s.Validate(raw)
		verr := requireValidationError(t, err)

		assert.Equal(t, []string{"profile.name"}, verr.Paths())
		assert.False(t, verr.Has(schema.MetaField))
	})

	t.Run("nested failure path is prefixed by the field key", func(t *testing.T) {
		t.Parallel()
		raw := validSignup()
		raw.Profile.Name = ""

		_, err := s.Validate(raw)
		verr := requireValidationError(t, err)

		require.Len(t, verr.FieldFailures, 1)
		f := verr.FieldFailures[0]
		assert.Equal(t, "profile.name", f.Path)
		assert.Equal(t, "name", f.Field)
		assert.Equal(t, "name is required", f.Message)
	})

	t.Run("every slice element is validated", func(t *testing.T) {
		t.Parallel()
		raw := validSignup()
		raw.Friends = []rawProfile{
			{Name: "ok", Code: "1"},
			{Name: "", Code: "2"},
			{Name: "ok", Code: "abc"},
		}

		_, err := s.Validate(raw)
		verr := requireValidationError(t, err)

		assert.Equal(t, []string{"friends.1.name", "friends.2.code"}, verr.Paths())
	})

	t.Run("nil slice stays nil", func(t *testing.T) {
		t.Parallel()
		raw := validSignup()
		raw.Friends = nil

		got, err := s.Validate(raw)
		require.NoError(t, err)
		assert.Nil(t, got.Friends)
	})

	t.Run("post checks run exhaustively", func(t *testing.T) {
		t.Parallel()
		raw := validSignup()
		raw.Extra = "9"
		raw.Email = "correct"
		raw.Password = "correct-horse"

		_, err := s.Validate(raw)
		verr := requireValidationError(t, err)

		require.Len(t, verr.FieldFailures, 1)
		assert.Equal(t, "email", verr.FieldFailures[0].Path)

		raw.Email = "horse@x"
		raw.Password = "correct-horse@x"
		raw.Confirm = raw.Password
		_, err = s.Validate(raw)
		verr = requireValidationError(t, err)

		require.Len(t, verr.FieldFailures, 2)
		for _, f := range verr.FieldFailures {
			assert.Equal(t, schema.MetaField, f.Path)
		}
		assert.Equal(t, "extra must be below the profile code", verr.FieldFailures[0].Message)
		assert.Contains(t, verr.FieldFailures[1].TypeName, "signup")
	})

	t.Run("hidden fields redact their values", func(t *testing.T) {
		t.Parallel()
		raw := validSignup()
		raw.Password = "short"
		raw.Confirm = "short"

		_, err := s.Validate(raw)
		verr := requireValidationError(t, err)

		require.Len(t, verr.FieldFailures, 1)
		assert.Equal(t, schema.HiddenValue, verr.FieldFailures[0].Value)
		assert.NotContains(t, verr.Full(), "short")
	})
}

func TestSchema_ParallelFields(t *testing.T) {
	t.Parallel()
	seq := signupSchema(t)
	par := signupSchema(t, schema.WithParallelFields(4))

	inputs := map[string]rawSignup{
		"valid": validSignup(),
		"many failures": {
			Email:    "broken",
			Password: "x",
			Confirm:  "x",
			Extra:    "nope",
			Profile:  rawProfile{Name: "", Code: "x"},
			Friends:  []rawProfile{{Name: "", Code: "1"}, {Name: "a", Code: "50"}},
		},
	}

	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			wantV, wantErr := seq.Validate(raw)
			gotV, gotErr := par.Validate(raw)
			assert.Equal(t, wantV, gotV)
			assert.Equal(t, wantErr, gotErr)
		})
	}
}

func TestSchema_ValidateValue(t *testing.T) {
	t.Parallel()
	s := ageSchema(t)

	t.Run("accepts the raw record", func(t *testing.T) {
		t.Parallel()
		got, err := s.ValidateValue(rawAge{Age: "3"})
		require.NoError(t, err)
		assert.Equal(t, age{Age: 3}, got)
	})

	t.Run("accepts a pointer to the raw record", func(t *testing.T) {
		t.Parallel()
		got, err := s.ValidateValue(&rawAge{Age: "3"})
		require.NoError(t, err)
		assert.Equal(t, age{Age: 3}, got)
	})

	t.Run("rejects other types", func(t *testing.T) {
		t.Parallel()
		_, err := s.ValidateValue("3")
		require.ErrorIs(t, err, schema.ErrRawTypeMismatch)
		assert.False(t, schema.IsValidationError(err))

		var nilRaw *rawAge
		_, err = s.ValidateValue(nilRaw)
		assert.ErrorIs(t, err, schema.ErrRawTypeMismatch)
	})
}

func TestSchema_PanickingOperation(t *testing.T) {
	t.Parallel()

	s, err := schema.NewBuilder[rawAge, age]("panics").
		Field("age",
			schema.TryMap("parse_int", strconv.Atoi),
			schema.Check("explodes", func(n int) bool {
				if n > 100 {
					panic("too big")
				}
				return true
			}),
		).
		Build()
	require.NoError(t, err)

	_, err = s.Validate(rawAge{Age: "101"})
	verr := requireValidationError(t, err)

	require.Len(t, verr.FieldFailures, 1)
	assert.False(t, verr.FieldFailures[0].Cause.IsPredicateFalse())
	assert.ErrorIs(t, err, schema.ErrOperationPanicked)
	assert.Contains(t, verr.FieldFailures[0].Cause.Error(), "too big")
}

func TestSchema_FallibleCheck(t *testing.T) {
	t.Parallel()

	errLookup := errors.New("lookup failed")
	s, err := schema.NewBuilder[rawAge, age]("fallible").
		Field("age",
			schema.TryMap("parse_int", strconv.Atoi),
			schema.TryCheck("known", func(n int) (bool, error) {
				switch {
				case n == 0:
					return false, errLookup
				case n < 0:
					return false, nil
				default:
					return true, nil
				}
			}),
		).
		Build()
	require.NoError(t, err)

	t.Run("error becomes the cause", func(t *testing.T) {
		t.Parallel()
		_, err := s.Validate(rawAge{Age: "0"})
		verr := requireValidationError(t, err)
		require.Len(t, verr.FieldFailures, 1)
		assert.Equal(t, schema.CauseError, verr.FieldFailures[0].Cause.Kind)
		assert.ErrorIs(t, err, errLookup)
	})

	t.Run("false without error is predicate false", func(t *testing.T) {
		t.Parallel()
		_, err := s.Validate(rawAge{Age: "-1"})
		verr := requireValidationError(t, err)
		require.Len(t, verr.FieldFailures, 1)
		assert.True(t, verr.FieldFailures[0].Cause.IsPredicateFalse())
	})
}

type recorder struct {
	outcomes []schema.Outcome
}

func (r *recorder) ObserveValidation(o schema.Outcome) {
	r.outcomes = append(r.outcomes, o)
}

func TestSchema_Observers(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := signupSchema(t, schema.WithObserver(rec), schema.WithLogger(logger))

	_, err := s.Validate(validSignup())
	require.NoError(t, err)

	raw := validSignup()
	raw.Confirm = "other"
	_, err = s.Validate(raw)
	require.Error(t, err)

	raw = validSignup()
	raw.Email = "broken"
	raw.Extra = "x"
	_, err = s.Validate(raw)
	require.Error(t, err)

	require.Len(t, rec.outcomes, 3)

	assert.True(t, rec.outcomes[0].Succeeded())
	assert.Equal(t, schema.StatePostChecked, rec.outcomes[0].State)
	assert.Equal(t, "signup", rec.outcomes[0].Schema)

	assert.Equal(t, schema.StateFailed, rec.outcomes[1].State)
	assert.Equal(t, schema.PhasePre, rec.outcomes[1].FailedPhase)
	assert.Equal(t, 1, rec.outcomes[1].Failures)

	assert.Equal(t, schema.PhaseFields, rec.outcomes[2].FailedPhase)
	assert.Equal(t, 2, rec.outcomes[2].Failures)

	logs := buf.String()
	assert.Contains(t, logs, "validation failed")
	assert.Contains(t, logs, "phase=pre")
	assert.Contains(t, logs, "phase=fields")
	assert.Contains(t, logs, "schema=signup")
}

func TestSchema_Fields(t *testing.T) {
	t.Parallel()
	s := signupSchema(t)

	fields := s.Fields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"email", "password", "confirm", "extra", "profile", "friends"}, keys)

	assert.Equal(t, "Password", fields[1].Name)
	assert.False(t, fields[1].Display)
	assert.False(t, fields[2].Display)
	assert.Empty(t, fields[2].Operations)
	assert.True(t, fields[0].Display)

	require.Len(t, fields[3].Operations, 2)
	assert.Equal(t, schema.KindTransform, fields[3].Operations[1].Kind())
	assert.True(t, fields[3].Operations[1].Fallible())

	assert.Equal(t, schema.KindForward, fields[4].Operations[0].Kind())
	assert.Equal(t, "forward(profile)", fields[4].Operations[0].Expr())
	assert.Equal(t, "forward_each(profile)", fields[5].Operations[0].Expr())

	fields[0].Operations[0] = schema.Operation{}
	assert.Equal(t, schema.KindValidate, s.Fields()[0].Operations[0].Kind())
}

func TestSchema_PreChecksAreExhaustive(t *testing.T) {
	t.Parallel()

	s, err := schema.NewBuilder[rawAge, age]("age").
		Pre(
			schema.Check("starts with 1", func(r rawAge) bool { return strings.HasPrefix(r.Age, "1") }),
			schema.Check("ends with 9", func(r rawAge) bool { return strings.HasSuffix(r.Age, "9") }),
		).
		Field("age", schema.TryMap("parse_int", strconv.Atoi)).
		Build()
	require.NoError(t, err)

	_, err = s.Validate(rawAge{Age: "x"})
	verr := requireValidationError(t, err)

	require.Len(t, verr.FieldFailures, 2)
	assert.Empty(t, verr.TransformFailures)
	assert.Equal(t, "starts with 1", verr.FieldFailures[0].Expr)
	assert.Equal(t, "ends with 9", verr.FieldFailures[1].Expr)
	for _, f := range verr.FieldFailures {
		assert.Equal(t, schema.MetaField, f.Path)
	}
}

func TestSchema_ReportGroupsValidateBeforeTransform(t *testing.T) {
	t.Parallel()

	s, err := schema.NewBuilder[rawProfile, profile]("profile").
		Field("code", schema.TryMap("parse_int", strconv.Atoi)).
		Field("name", schema.Check("name != \"\"", func(s string) bool { return s != "" })).
		Build()
	require.NoError(t, err)

	_, err = s.Validate(rawProfile{Name: "", Code: "abc"})
	verr := requireValidationError(t, err)

	assert.Equal(t, []string{"name", "code"}, verr.Paths())
	details := verr.Details()
	require.Len(t, details, 2)
	assert.Equal(t, "validate", details[0].Kind)
	assert.Equal(t, "transform", details[1].Kind)
	assert.True(t, strings.HasPrefix(verr.Brief(), "name: "))
}
