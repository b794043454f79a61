// Package validator is a library of small, composable predicates meant to be
// plugged into schema chains with schema.Check and schema.TryCheck.
//
// Every exported constructor returns a plain function, either func(T) bool or
// func(T) (bool, error) for predicates that can fail for reasons other than
// the input being invalid (for example a malformed pattern):
//
//	schema.Check("age >= 18", validator.Ge(18))
//	schema.Check("one of roles", validator.OneOf("admin", "member"))
//	schema.TryCheck(`matches ^\d+$`, validator.Matches(`^\d+$`))
//
// Predicates hold no hidden state except the shared compiled-pattern cache,
// which is bounded and safe for concurrent use.
package validator
