package binder

import (
	"bytes"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

var cborMode = func() cbor.DecMode {
	mode, err := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

// decodeCBOR matches keys by cbor tag, then json tag, then field name.
func decodeCBOR(data []byte, v any) error {
	return cborMode.Unmarshal(data, v)
}

// decodeMsgPack matches keys by json tag.
func decodeMsgPack(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	dec.DisallowUnknownFields(true)
	return dec.Decode(v)
}
