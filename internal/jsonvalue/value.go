// Package jsonvalue is the JSON-parser external collaborator described in
// spec.md §6: it must preserve object insertion order, represent numbers
// with at least float64 precision, and distinguish the four JSON value
// kinds. It is built on gjson rather than encoding/json because gjson's
// Result.ForEach walks both object members and array elements in their
// original source order without ever materialising an unordered Go map —
// exactly the guarantee the evaluator's depth-first walk depends on.
package jsonvalue

import (
	"github.com/tidwall/gjson"
)

// Kind identifies which of the six JSON value shapes a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// JSONError reports that the input could not be parsed as JSON.
type JSONError struct {
	Message string
}

func (e *JSONError) Error() string { return e.Message }

// Value is an immutable, order-preserving JSON value.
type Value struct {
	res gjson.Result
}

// Parse parses data as a single JSON document. The whole document is
// materialised up front (the engine does not stream, per spec.md's
// non-goals).
func Parse(data []byte) (*Value, error) {
	if !gjson.ValidBytes(data) {
		return nil, &JSONError{Message: "invalid JSON document"}
	}
	return &Value{res: gjson.ParseBytes(data)}, nil
}

// Kind reports which JSON value shape v holds.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	switch v.res.Type {
	case gjson.True, gjson.False:
		return KindBool
	case gjson.Number:
		return KindNumber
	case gjson.String:
		return KindString
	case gjson.JSON:
		if v.res.IsArray() {
			return KindArray
		}
		return KindObject
	default:
		return KindNull
	}
}

// Raw returns the exact source text of v, preserving the original numeric
// literal (so "1.50" round-trips as written, not as 1.5).
func (v *Value) Raw() string { return v.res.Raw }

// Bool returns v's boolean value, or false if v is not a boolean.
func (v *Value) Bool() bool { return v.res.Bool() }

// Number returns v's numeric value as a float64, or 0 if v is not a number.
func (v *Value) Number() float64 { return v.res.Num }

// String returns v's string value, or "" if v is not a string.
func (v *Value) String() string { return v.res.Str }

// Entry is one (key, value) member of an object, in source order.
type Entry struct {
	Key   string
	Value *Value
}

// ObjectEntries returns v's members in document insertion order. Returns
// nil if v is not an object.
func (v *Value) ObjectEntries() []Entry {
	if v.Kind() != KindObject {
		return nil
	}
	var entries []Entry
	v.res.ForEach(func(key, val gjson.Result) bool {
		entries = append(entries, Entry{Key: key.String(), Value: &Value{res: val}})
		return true
	})
	return entries
}

// ArrayElements returns v's elements in ascending index order. Returns nil
// if v is not an array.
func (v *Value) ArrayElements() []*Value {
	if v.Kind() != KindArray {
		return nil
	}
	var elems []*Value
	v.res.ForEach(func(_, val gjson.Result) bool {
		elems = append(elems, &Value{res: val})
		return true
	})
	return elems
}

// Depth returns the maximum nesting depth of v: a scalar is depth 1, and a
// container is one more than the deepest of its children (an empty
// container is depth 1). Backs the CLI's --depth flag.
func (v *Value) Depth() int {
	switch v.Kind() {
	case KindObject:
		max := 0
		for _, e := range v.ObjectEntries() {
			if d := e.Value.Depth(); d > max {
				max = d
			}
		}
		return max + 1
	case KindArray:
		max := 0
		for _, e := range v.ArrayElements() {
			if d := e.Depth(); d > max {
				max = d
			}
		}
		return max + 1
	default:
		return 1
	}
}
