package codec

import (
	"errors"
	"reflect"

	"toolkit/core/failure"

	"github.com/goccy/go-json"
)

// DefaultMaxDepth is the nesting limit applied by ToJSON.
const DefaultMaxDepth = 100

var jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()

func jsonLeaf(t reflect.Type) bool {
	return implements(t, jsonMarshalerType) || implements(t, textMarshalerType)
}

// ToJSON renders v as JSON text, limited to DefaultMaxDepth levels of nesting.
func ToJSON(v any) (string, error) {
	return toJSON("codec.ToJSON", v, DefaultMaxDepth)
}

// ToJSONDepth renders v as JSON text, failing with failure.ErrRecursionLimit
// when containers nest deeper than maxDepth or the graph is cyclic.
// A maxDepth below 1 means DefaultMaxDepth.
func ToJSONDepth(v any, maxDepth int) (string, error) {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	return toJSON("codec.ToJSONDepth", v, maxDepth)
}

func toJSON(op string, v any, maxDepth int) (string, error) {
	b, err := marshalJSON(op, v, maxDepth)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FromJSON decodes JSON text into a T.
func FromJSON[T any](text string) (T, error) {
	var out T
	if err := unmarshalJSON("codec.FromJSON", []byte(text), &out); err != nil {
		return out, err
	}
	return out, nil
}

func marshalJSON(op string, v any, maxDepth int) ([]byte, error) {
	if err := checkGraph(v, "json", maxDepth, jsonLeaf); err != nil {
		if errors.Is(err, errCycle) || errors.Is(err, errDepth) {
			return nil, failure.Newf(failure.ErrRecursionLimit, op, typeLabel(v), "%v (limit %d)", err, maxDepth)
		}
		return nil, failure.New(failure.ErrSerialization, op, typeLabel(v), err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, failure.New(failure.ErrSerialization, op, typeLabel(v), err)
	}
	return b, nil
}

func unmarshalJSON(op string, data []byte, dst any) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return failure.New(failure.ErrDeserialization, op, typeLabel(dst), err)
	}
	return nil
}
