package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// decodeJSON decodes exactly one JSON value and rejects unknown fields.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}
		return err
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}

// viaJSON re-encodes a generic document as JSON and decodes it strictly, so
// formats without json tag support share the same field names and rules.
func viaJSON(doc any, v any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return decodeJSON(data, v)
}
