// Package handler adapts validation schemas to net/http.
//
// Wrap turns a typed HandlerFunc into an http.HandlerFunc. The request body is
// decoded with binder.Request according to its Content-Type, and Validate runs
// a schema between decoding and the handler:
//
//	signups := schema.NewBuilder[rawSignup, signup]("signup").
//		Field("email", schema.Map("trim", sanitizer.Trim), schema.Check("email", validator.Email)).
//		MustBuild()
//
//	create := func(ctx handler.Context, s signup) handler.Response {
//		return handler.JSON(s, handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	r.Post("/signup", handler.Wrap(handler.Validate(signups, create)))
//
// # Errors
//
// Errors from decoding, validation and rendering reach the ErrorHandler.
// Classify maps them to a status code: 422 for *schema.ValidationError, 415
// for a missing or unsupported media type, 413 for an oversized body, 400 for
// a malformed body and 500 for anything else. Error writes a JSON envelope
//
//	{"error":{"code":"validation_error","message":"validation failed",
//	  "details":{"profile.name":["..."]},
//	  "failures":[{"kind":"validate","field":"name","path":"profile.name",...}]}}
//
// or, when the client does not accept JSON, the human readable rendering of
// the report as text/plain.
//
// NewErrorHandler adds structured logging of every error before writing it.
package handler
