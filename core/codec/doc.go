// Package codec serializes values to markup (XML), JSON, YAML and an opaque
// binary envelope.
//
// The text formats carry a value's public shape only: exported fields,
// honouring each format's struct tags. The binary format carries whatever
// msgpack encodes for the value, so types holding private state implement
// msgpack.CustomEncoder and msgpack.CustomDecoder. The formats are not
// interchangeable; decode with the format that produced the payload.
//
// # Graph Guard
//
// Before encoding, the value graph is walked once. Cycles are rejected for
// every format. JSON additionally enforces a nesting limit (DefaultMaxDepth
// unless the caller supplies one) and reports it as failure.ErrRecursionLimit.
//
// # Binary Envelope
//
//	"TKB1" | msgpack{ t: type name, v: type version, p: payload bytes }
//
// FromBinary resolves the type name against types added with Register.
// Builtin scalars, byte slices, string slices and generic maps are
// registered by default. A type may pin its name with Named and declare a
// layout version with Versioned; decoding a payload whose version differs
// from the registered type fails.
//
// # Usage
//
//	text, err := codec.ToMarkup(item)
//	item, err = codec.FromMarkup[Item](text)
//
//	codec.Register(Session{})
//	blob, err := codec.ToBinary(session)
//	v, err := codec.FromBinary(blob) // v.(Session)
package codec
