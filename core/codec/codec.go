package codec

import (
	"reflect"
	"strings"

	"toolkit/core/failure"
)

// Codec provides content-type aware marshaling over one of the package formats.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v, which must be a non-nil pointer.
	Unmarshal(data []byte, v any) error
}

var (
	Markup Codec = markupCodec{}
	JSON   Codec = jsonCodec{}
	YAML   Codec = yamlCodec{}
	Binary Codec = binaryCodec{}
)

// ByName returns the codec for a format name: xml (or markup), json, yaml
// (or yml), binary (or bin).
func ByName(name string) (Codec, bool) {
	switch strings.ToLower(name) {
	case "xml", "markup":
		return Markup, true
	case "json":
		return JSON, true
	case "yaml", "yml":
		return YAML, true
	case "binary", "bin":
		return Binary, true
	default:
		return nil, false
	}
}

type markupCodec struct{}

func (markupCodec) ContentType() string { return "application/xml" }

func (markupCodec) Marshal(v any) ([]byte, error) { return marshalMarkup("codec.Markup", v) }

func (markupCodec) Unmarshal(data []byte, v any) error {
	return unmarshalMarkup("codec.Markup", data, v)
}

type jsonCodec struct{}

func (jsonCodec) ContentType() string { return "application/json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return marshalJSON("codec.JSON", v, DefaultMaxDepth)
}

func (jsonCodec) Unmarshal(data []byte, v any) error { return unmarshalJSON("codec.JSON", data, v) }

type yamlCodec struct{}

func (yamlCodec) ContentType() string { return "application/yaml" }

func (yamlCodec) Marshal(v any) ([]byte, error) { return marshalYAML("codec.YAML", v) }

func (yamlCodec) Unmarshal(data []byte, v any) error { return unmarshalYAML("codec.YAML", data, v) }

type binaryCodec struct{}

func (binaryCodec) ContentType() string { return "application/octet-stream" }

func (binaryCodec) Marshal(v any) ([]byte, error) { return ToBinary(v) }

func (binaryCodec) Unmarshal(data []byte, v any) error {
	const op = "codec.Binary"

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return failure.Newf(failure.ErrDeserialization, op, typeLabel(v), "target must be a non-nil pointer")
	}
	if len(data) == 0 {
		return nil
	}

	dst := rv.Elem()
	if dst.Kind() == reflect.Interface {
		got, err := FromBinary(data)
		if err != nil {
			return err
		}
		gv := reflect.ValueOf(got)
		if !gv.Type().AssignableTo(dst.Type()) {
			return failure.Newf(failure.ErrDeserialization, op, typeLabel(got), "not assignable to %s", dst.Type())
		}
		dst.Set(gv)
		return nil
	}

	env, err := openEnvelope(op, data)
	if err != nil {
		return err
	}
	if want := nameOf(dst.Type()); env.Type != want {
		return failure.Newf(failure.ErrDeserialization, op, env.Type, "payload holds %s, not %s", env.Type, want)
	}
	decoded, err := decodePayload(op, env, dst.Type())
	if err != nil {
		return err
	}
	dst.Set(decoded)
	return nil
}
