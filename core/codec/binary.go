package codec

import (
	"bytes"
	"encoding"
	"reflect"

	"toolkit/core/failure"

	"github.com/vmihailenco/msgpack/v5"
)

var magic = []byte("TKB1")

type envelope struct {
	Type    string `msgpack:"t"`
	Version uint32 `msgpack:"v"`
	Payload []byte `msgpack:"p"`
}

var (
	customEncoderType    = reflect.TypeOf((*msgpack.CustomEncoder)(nil)).Elem()
	msgpackMarshalerType = reflect.TypeOf((*msgpack.Marshaler)(nil)).Elem()
	binaryMarshalerType  = reflect.TypeOf((*encoding.BinaryMarshaler)(nil)).Elem()
)

func binaryLeaf(t reflect.Type) bool {
	return implements(t, customEncoderType) ||
		implements(t, msgpackMarshalerType) ||
		implements(t, binaryMarshalerType)
}

// ToBinary encodes v into a binary envelope. A nil v, or a nil pointer, map
// or slice, yields nil without error. The dynamic type of v is registered
// unless a type of the same name already is, so FromBinary can decode the
// result within the same process; other processes must Register it.
func ToBinary(v any) ([]byte, error) {
	if absent(v) {
		return nil, nil
	}
	const op = "codec.ToBinary"

	if err := checkGraph(v, "msgpack", 0, binaryLeaf); err != nil {
		return nil, failure.New(failure.ErrSerialization, op, typeLabel(v), err)
	}
	payload, err := msgpack.Marshal(v)
	if err != nil {
		return nil, failure.New(failure.ErrSerialization, op, typeLabel(v), err)
	}

	t := reflect.TypeOf(v)
	registerIfAbsent(t)
	body, err := msgpack.Marshal(&envelope{
		Type:    nameOf(t),
		Version: versionOf(t),
		Payload: payload,
	})
	if err != nil {
		return nil, failure.New(failure.ErrSerialization, op, typeLabel(v), err)
	}

	out := make([]byte, 0, len(magic)+len(body))
	out = append(out, magic...)
	return append(out, body...), nil
}

// FromBinary decodes an envelope produced by ToBinary back into a value of
// the registered type it names. Empty input yields nil without error.
func FromBinary(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	const op = "codec.FromBinary"

	env, err := openEnvelope(op, data)
	if err != nil {
		return nil, err
	}
	t, ok := lookup(env.Type)
	if !ok {
		return nil, failure.Newf(failure.ErrDeserialization, op, env.Type, "type not registered")
	}
	rv, err := decodePayload(op, env, t)
	if err != nil {
		return nil, err
	}
	return rv.Interface(), nil
}

// FromBinaryAs decodes an envelope into a T without consulting the registry
// unless T is an interface type. The envelope must name T. Empty input
// yields the zero T without error.
func FromBinaryAs[T any](data []byte) (T, error) {
	var out T
	if err := Binary.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}

func openEnvelope(op string, data []byte) (*envelope, error) {
	if !bytes.HasPrefix(data, magic) {
		return nil, failure.Newf(failure.ErrDeserialization, op, "", "missing %q header", magic)
	}
	var env envelope
	if err := msgpack.Unmarshal(data[len(magic):], &env); err != nil {
		return nil, failure.New(failure.ErrDeserialization, op, "", err)
	}
	if env.Type == "" {
		return nil, failure.Newf(failure.ErrDeserialization, op, "", "envelope has no type")
	}
	return &env, nil
}

func decodePayload(op string, env *envelope, t reflect.Type) (reflect.Value, error) {
	if want := versionOf(t); env.Version != want {
		return reflect.Value{}, failure.Newf(failure.ErrDeserialization, op, env.Type,
			"type version mismatch: payload v%d, type v%d", env.Version, want)
	}
	ptr := reflect.New(t)
	if err := msgpack.Unmarshal(env.Payload, ptr.Interface()); err != nil {
		return reflect.Value{}, failure.New(failure.ErrDeserialization, op, env.Type, err)
	}
	return ptr.Elem(), nil
}

func absent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
