package codec

import (
	"reflect"
	"sync"
	"time"
)

// Named lets a type fix the name recorded in binary envelopes, so it can be
// renamed or moved without breaking stored payloads.
type Named interface {
	BinaryName() string
}

// Versioned lets a type declare the version of its binary layout. The
// method must not depend on the receiver's state.
type Versioned interface {
	BinaryVersion() uint32
}

var registry = struct {
	sync.RWMutex
	types map[string]reflect.Type
}{types: make(map[string]reflect.Type)}

func init() {
	for _, v := range []any{
		"", false,
		int(0), int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0),
		float32(0), float64(0),
		[]byte(nil), []string(nil), []any(nil),
		map[string]any(nil), map[string]string(nil),
		time.Time{},
	} {
		Register(v)
	}
}

// Register makes the dynamic type of v known to FromBinary. Registering a
// pointer registers the pointer type. Later registrations of the same name
// replace earlier ones.
func Register(v any) {
	t := reflect.TypeOf(v)
	if t == nil {
		return
	}
	registry.Lock()
	registry.types[nameOf(t)] = t
	registry.Unlock()
}

// registerIfAbsent registers t unless its name is taken, so an explicit
// Register of another type under the same name wins.
func registerIfAbsent(t reflect.Type) {
	name := nameOf(t)
	registry.Lock()
	if _, ok := registry.types[name]; !ok {
		registry.types[name] = t
	}
	registry.Unlock()
}

func lookup(name string) (reflect.Type, bool) {
	registry.RLock()
	defer registry.RUnlock()
	t, ok := registry.types[name]
	return t, ok
}

// nameOf returns the envelope name of t.
func nameOf(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		return "*" + nameOf(t.Elem())
	}
	if n, ok := reflect.New(t).Interface().(Named); ok {
		return n.BinaryName()
	}
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// versionOf returns the declared layout version of t, or 0.
func versionOf(t reflect.Type) uint32 {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if v, ok := reflect.New(t).Interface().(Versioned); ok {
		return v.BinaryVersion()
	}
	return 0
}
