package binder

import (
	"encoding/xml"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

func decodeYAML(data []byte, v any) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	return viaJSON(doc, v)
}

func decodeTOML(data []byte, v any) error {
	var doc map[string]any
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return err
	}
	return viaJSON(doc, v)
}

func decodeXML(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
