// Package sanitizer holds transforms meant for schema.Map and schema.TryMap.
//
// Infallible helpers are plain func(F) T values (Trim, ToSnake, Clamp(0, 10)).
// Conversions that can reject input return func(F) (T, error) shaped values
// (ParseInt[int], ParseUUID, ParseIPv4) and keep the underlying strconv,
// uuid or netip error wrapped so callers can inspect it with errors.Is.
//
//	schema.Field("age",
//	    schema.Map("trim", sanitizer.Trim),
//	    schema.TryMap("parse int", sanitizer.ParseInt[int]),
//	)
//
// Case conversion splits input into words at separators, lower-to-upper
// transitions and acronym boundaries, so "HTTPServer", "http_server" and
// "http server" all become "http-server" under ToKebab.
package sanitizer
