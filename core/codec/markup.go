package codec

import (
	"bytes"
	"encoding"
	"encoding/xml"
	"reflect"

	"toolkit/core/failure"
)

var (
	xmlMarshalerType  = reflect.TypeOf((*xml.Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

func markupLeaf(t reflect.Type) bool {
	return implements(t, xmlMarshalerType) || implements(t, textMarshalerType)
}

// ToMarkup renders v as an XML fragment: no declaration, no namespace
// preamble, so the result can be embedded in other markup.
func ToMarkup[T any](v T) (string, error) {
	b, err := marshalMarkup("codec.ToMarkup", v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToMarkupUTF8 renders v as a standalone UTF-8 document: the body of
// ToMarkup preceded by an XML declaration naming UTF-8. No byte-order mark
// is written.
func ToMarkupUTF8[T any](v T) (string, error) {
	b, err := marshalMarkup("codec.ToMarkupUTF8", v)
	if err != nil {
		return "", err
	}
	return xml.Header + string(b), nil
}

// FromMarkup decodes text produced by ToMarkup or ToMarkupUTF8 into a T.
func FromMarkup[T any](text string) (T, error) {
	var out T
	if err := unmarshalMarkup("codec.FromMarkup", []byte(text), &out); err != nil {
		return out, err
	}
	return out, nil
}

func marshalMarkup(op string, v any) ([]byte, error) {
	if err := checkGraph(v, "xml", 0, markupLeaf); err != nil {
		return nil, failure.New(failure.ErrSerialization, op, typeLabel(v), err)
	}
	var buf bytes.Buffer
	if err := xml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, failure.New(failure.ErrSerialization, op, typeLabel(v), err)
	}
	return buf.Bytes(), nil
}

func unmarshalMarkup(op string, data []byte, dst any) error {
	if err := xml.Unmarshal(data, dst); err != nil {
		return failure.New(failure.ErrDeserialization, op, typeLabel(dst), err)
	}
	return nil
}

func typeLabel(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
