// Package binder decodes untrusted payloads into raw record structs.
//
// Decode dispatches on the media type of a Content-Type value and Request
// does the same for an HTTP request body read under a size limit. The json
// struct tag is the wire name for every format except XML, which uses the
// xml tag, and forms, which prefer the form tag:
//
//	var raw rawSignup
//	if err := binder.Decode(data, "application/yaml", &raw); err != nil {
//	    // errors.Is(err, binder.ErrFailedToDecode)
//	}
//
// Decoding is strict: unknown fields and trailing data are rejected.
//
// Supported media types:
//
//	application/json
//	application/x-www-form-urlencoded
//	application/yaml, application/x-yaml, text/yaml
//	application/toml
//	application/xml, text/xml
//	application/cbor
//	application/msgpack, application/x-msgpack, application/vnd.msgpack
package binder
