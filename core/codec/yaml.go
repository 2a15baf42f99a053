package codec

import (
	"reflect"

	"toolkit/core/failure"

	"gopkg.in/yaml.v3"
)

var yamlMarshalerType = reflect.TypeOf((*yaml.Marshaler)(nil)).Elem()

func yamlLeaf(t reflect.Type) bool {
	return implements(t, yamlMarshalerType) || implements(t, textMarshalerType)
}

// ToYAML renders v as YAML text.
func ToYAML(v any) (string, error) {
	b, err := marshalYAML("codec.ToYAML", v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FromYAML decodes YAML text into a T.
func FromYAML[T any](text string) (T, error) {
	var out T
	if err := unmarshalYAML("codec.FromYAML", []byte(text), &out); err != nil {
		return out, err
	}
	return out, nil
}

func marshalYAML(op string, v any) ([]byte, error) {
	if err := checkGraph(v, "yaml", 0, yamlLeaf); err != nil {
		return nil, failure.New(failure.ErrSerialization, op, typeLabel(v), err)
	}
	b, err := yaml.Marshal(v)
	if err != nil {
		return nil, failure.New(failure.ErrSerialization, op, typeLabel(v), err)
	}
	return b, nil
}

func unmarshalYAML(op string, data []byte, dst any) error {
	if err := yaml.Unmarshal(data, dst); err != nil {
		return failure.New(failure.ErrDeserialization, op, typeLabel(dst), err)
	}
	return nil
}
