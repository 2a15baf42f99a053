package codec

import (
	"errors"
	"reflect"
	"strings"
)

var (
	errCycle = errors.New("cyclic reference")
	errDepth = errors.New("nesting too deep")
)

// graphGuard walks a value the way an encoder would, looking for cycles and,
// when maxDepth > 0, containers nested deeper than maxDepth.
type graphGuard struct {
	maxDepth int
	tag      string
	leaf     func(reflect.Type) bool
	onPath   map[visit]struct{}
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

func checkGraph(v any, tag string, maxDepth int, leaf func(reflect.Type) bool) error {
	g := &graphGuard{
		maxDepth: maxDepth,
		tag:      tag,
		leaf:     leaf,
		onPath:   make(map[visit]struct{}),
	}
	return g.walk(reflect.ValueOf(v), 0)
}

func (g *graphGuard) walk(v reflect.Value, depth int) error {
	if !v.IsValid() {
		return nil
	}
	if g.leaf != nil && g.leaf(v.Type()) {
		return nil
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return g.enter(v, func() error { return g.walk(v.Elem(), depth) })

	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return g.walk(v.Elem(), depth)

	case reflect.Struct:
		depth++
		if err := g.deepen(depth); err != nil {
			return err
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() && !f.Anonymous {
				continue
			}
			if name, _, _ := strings.Cut(f.Tag.Get(g.tag), ","); name == "-" {
				continue
			}
			if err := g.walk(v.Field(i), depth); err != nil {
				return err
			}
		}

	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		depth++
		if err := g.deepen(depth); err != nil {
			return err
		}
		return g.enter(v, func() error {
			iter := v.MapRange()
			for iter.Next() {
				if err := g.walk(iter.Value(), depth); err != nil {
					return err
				}
			}
			return nil
		})

	case reflect.Slice:
		if v.IsNil() || v.Type().Elem().Kind() == reflect.Uint8 {
			return nil
		}
		depth++
		if err := g.deepen(depth); err != nil {
			return err
		}
		return g.enter(v, func() error { return g.elems(v, depth) })

	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return nil
		}
		depth++
		if err := g.deepen(depth); err != nil {
			return err
		}
		return g.elems(v, depth)
	}
	return nil
}

func (g *graphGuard) elems(v reflect.Value, depth int) error {
	for i := 0; i < v.Len(); i++ {
		if err := g.walk(v.Index(i), depth); err != nil {
			return err
		}
	}
	return nil
}

// enter marks v as being on the current path for the duration of fn.
func (g *graphGuard) enter(v reflect.Value, fn func() error) error {
	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if _, seen := g.onPath[key]; seen {
		return errCycle
	}
	g.onPath[key] = struct{}{}
	defer delete(g.onPath, key)
	return fn()
}

func (g *graphGuard) deepen(depth int) error {
	if g.maxDepth > 0 && depth > g.maxDepth {
		return errDepth
	}
	return nil
}

// implements reports whether t or *t implements iface.
func implements(t, iface reflect.Type) bool {
	return t.Implements(iface) || (t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(iface))
}
