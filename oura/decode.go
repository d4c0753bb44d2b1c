package oura

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	jsonUnmarshalerType = reflect.TypeFor[json.Unmarshaler]()
)

// decodeStrict unmarshals data into v, then walks the raw document to make
// sure every required field of v's type was present and non-null.
//
// A struct field is optional when its type is a pointer (nullable) or its
// json tag carries omitempty (may be absent, defaults to zero). Every other
// field, and every element of a slice of non-pointers, is required. Unknown
// keys are ignored.
func decodeStrict(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	return checkRequired(reflect.TypeOf(v), raw, "")
}

func checkRequired(t reflect.Type, raw any, path string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	// Leaf types that parse themselves (timestamps, dates).
	if t.Implements(textUnmarshalerType) || reflect.PointerTo(t).Implements(textUnmarshalerType) ||
		t.Implements(jsonUnmarshalerType) || reflect.PointerTo(t).Implements(jsonUnmarshalerType) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		if raw == nil {
			return &MissingFieldError{Path: path}
		}
		obj, ok := raw.(map[string]any)
		if !ok {
			// json.Unmarshal has already rejected the type mismatch.
			return nil
		}
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, optional := fieldKey(f)
			if name == "-" {
				continue
			}

			val, present := obj[name]
			if !present || val == nil {
				if optional {
					continue
				}
				return &MissingFieldError{Path: joinPath(path, name)}
			}
			if err := checkRequired(f.Type, val, joinPath(path, name)); err != nil {
				return err
			}
		}

	case reflect.Slice, reflect.Array:
		arr, ok := raw.([]any)
		if !ok {
			return nil
		}
		elem := t.Elem()
		for i, el := range arr {
			elPath := fmt.Sprintf("%s[%d]", path, i)
			if el == nil {
				if elem.Kind() == reflect.Pointer {
					continue
				}
				return &MissingFieldError{Path: elPath}
			}
			if err := checkRequired(elem, el, elPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// fieldKey returns the JSON key of f and whether f may be absent or null.
func fieldKey(f reflect.StructField) (name string, optional bool) {
	name = f.Name
	tag, ok := f.Tag.Lookup("json")
	if ok {
		parts := strings.Split(tag, ",")
		if parts[0] != "" {
			name = parts[0]
		}
		for _, opt := range parts[1:] {
			if opt == "omitempty" {
				optional = true
			}
		}
	}
	if f.Type.Kind() == reflect.Pointer {
		optional = true
	}
	return name, optional
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
