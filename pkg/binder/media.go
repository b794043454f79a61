package binder

import (
	"fmt"
	"mime"
	"slices"
	"strings"
)

const (
	MIMEJSON    = "application/json"
	MIMEForm    = "application/x-www-form-urlencoded"
	MIMEYAML    = "application/yaml"
	MIMETOML    = "application/toml"
	MIMEXML     = "application/xml"
	MIMECBOR    = "application/cbor"
	MIMEMsgPack = "application/msgpack"
)

// Decoder decodes one payload into v.
type Decoder func(data []byte, v any) error

var decoders = map[string]Decoder{
	MIMEJSON:                  decodeJSON,
	MIMEForm:                  decodeForm,
	MIMEYAML:                  decodeYAML,
	"application/x-yaml":      decodeYAML,
	"text/yaml":               decodeYAML,
	MIMETOML:                  decodeTOML,
	MIMEXML:                   decodeXML,
	"text/xml":                decodeXML,
	MIMECBOR:                  decodeCBOR,
	MIMEMsgPack:               decodeMsgPack,
	"application/x-msgpack":   decodeMsgPack,
	"application/vnd.msgpack": decodeMsgPack,
}

// formats maps short format names, as used on the command line, to media types.
var formats = map[string]string{
	"json":    MIMEJSON,
	"form":    MIMEForm,
	"yaml":    MIMEYAML,
	"yml":     MIMEYAML,
	"toml":    MIMETOML,
	"xml":     MIMEXML,
	"cbor":    MIMECBOR,
	"msgpack": MIMEMsgPack,
}

// MediaType extracts the bare media type from a Content-Type value.
func MediaType(contentType string) (string, error) {
	if strings.TrimSpace(contentType) == "" {
		return "", ErrMissingContentType
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnsupportedMediaType, contentType, err)
	}
	return mt, nil
}

// FormatMediaType returns the media type for a short format name such as "yaml".
func FormatMediaType(format string) (string, bool) {
	mt, ok := formats[strings.ToLower(format)]
	return mt, ok
}

// Formats lists the short format names accepted by FormatMediaType.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Supported reports whether a decoder exists for the media type.
func Supported(mediaType string) bool {
	_, ok := decoders[mediaType]
	return ok
}
