package codec

import (
	"io"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes v as YAML.
func MarshalYAML(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// UnmarshalYAML decodes YAML data into v.
func UnmarshalYAML(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
