// Package schema turns a declarative set of per-field rules into an executable
// pipeline that converts an untrusted raw record into a strongly typed
// validated record, or into a structured report of every violation found.
//
// A schema pairs two struct types: the raw record R, as decoded from the wire,
// and the validated record V. Fields are paired by key (the `valid` tag, then
// the `json` tag name, then the Go field name). Each field carries an ordered
// chain of operations built with Check, TryCheck, Map, TryMap, Forward and
// ForwardEach. The chain is type checked once by Builder.Build, so a compiled
// Schema never fails because of how it was written, only because of its input.
//
// # Phases
//
// Validate runs three phases and stops at the first one that fails:
//
//  1. pre checks against the raw record
//  2. every field chain, independently and exhaustively
//  3. post checks against the assembled validated record
//
// Each phase collects all of its failures into one *ValidationError before
// deciding. Struct-level failures are reported under the "<meta>" path.
//
// # Usage
//
//	type rawUser struct {
//	    Age string `json:"age"`
//	}
//
//	type user struct {
//	    Age int `json:"age"`
//	}
//
//	users := schema.NewBuilder[rawUser, user]("user").
//	    Field("age",
//	        schema.TryMap("parse_int", strconv.Atoi),
//	        schema.Check("age >= 0", func(n int) bool { return n >= 0 }).
//	            WithMessage("age must not be negative"),
//	    ).
//	    MustBuild()
//
//	u, err := users.Validate(rawUser{Age: "42"})
//	if verr, ok := schema.AsValidationError(err); ok {
//	    fmt.Print(verr.HumanReadable())
//	}
//
// # Nesting
//
// Forward hands a field to another schema; failures of the nested schema are
// merged into the parent report with the field key prefixed onto every path,
// so a failing "name" inside "profile" is reported as "profile.name".
// ForwardEach does the same for every element of a slice ("addresses.1.zip").
package schema
