package output

import (
	"encoding/json"
	"fmt"
	"image"
	"math"
	"reflect"
	"strings"
)

// Lister is implemented by values that lay themselves out as plain nested
// sequences, the way numeric arrays do.
type Lister interface {
	ToList() any
}

var (
	marshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	listerType    = reflect.TypeOf((*Lister)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
	pointType     = reflect.TypeOf(image.Point{})
	rectType      = reflect.TypeOf(image.Rectangle{})
)

// Normalize converts v into a tree that encoding/json can always encode.
// Numeric arrays become nested lists of numbers; values JSON cannot
// represent become their string form.
func Normalize(v any) any {
	if v == nil {
		return nil
	}
	return normalize(reflect.ValueOf(v))
}

func normalize(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		if rv.Kind() == reflect.Pointer && implements(rv, listerType, marshalerType, errorType) {
			break
		}
		rv = rv.Elem()
	}

	t := rv.Type()
	switch {
	case t == pointType:
		p := rv.Interface().(image.Point)
		return []any{p.X, p.Y}
	case t == rectType:
		r := rv.Interface().(image.Rectangle)
		return normalize(reflect.ValueOf([4]image.Point{
			r.Min, {X: r.Max.X, Y: r.Min.Y}, r.Max, {X: r.Min.X, Y: r.Max.Y},
		}))
	case implements(rv, listerType):
		return normalize(reflect.ValueOf(rv.Interface().(Lister).ToList()))
	case implements(rv, marshalerType):
		return rv.Interface()
	case implements(rv, errorType):
		return stringify(rv)
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return stringify(rv)
		}
		return f
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		return normalizeSeq(rv)
	case reflect.Array:
		return normalizeSeq(rv)
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		return normalizeMap(rv)
	case reflect.Struct:
		return normalizeStruct(rv)
	default:
		// complex, chan, func, unsafe pointers
		return stringify(rv)
	}
}

func normalizeSeq(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = normalize(rv.Index(i))
	}
	return out
}

func normalizeMap(rv reflect.Value) map[string]any {
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[mapKey(iter.Key())] = normalize(iter.Value())
	}
	return out
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return stringify(k)
}

func normalizeStruct(rv reflect.Value) map[string]any {
	t := rv.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		out[name] = normalize(rv.Field(i))
	}
	return out
}

func implements(rv reflect.Value, ifaces ...reflect.Type) bool {
	for _, it := range ifaces {
		if rv.Type().Implements(it) && rv.CanInterface() {
			return true
		}
	}
	return false
}

func stringify(rv reflect.Value) string {
	if !rv.CanInterface() {
		return rv.String()
	}
	switch v := rv.Interface().(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
