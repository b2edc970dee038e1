// Package jsonvalue is the read-only JSON tree handed to config parsers.
// Every accessor returns a result.Result whose failure is tagged with the
// path of the value that could not be read.
package jsonvalue

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/problem"
	"github.com/lamali292/one-piece-api/internal/result"
)

// Kind names the JSON type of an element.
type Kind string

// Element kinds
const (
	KindNull    Kind = "null"
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindString  Kind = "string"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// Element is a JSON value together with its location in the document.
type Element struct {
	value gjson.Result
	path  string
}

// Parse validates data and returns its root element.
func Parse(data []byte) result.Result[Element] {
	if !gjson.ValidBytes(data) {
		return result.Failure[Element](problem.New("Invalid JSON"))
	}
	return result.Success(Element{value: gjson.ParseBytes(data)})
}

// ParseAt is Parse with a root path, used when the document is an embedded
// fragment of a larger file.
func ParseAt(path string, data []byte) result.Result[Element] {
	return result.Map(Parse(data), func(e Element) Element {
		e.path = path
		return e
	})
}

// FromValue marshals a decoded Go value (for example the output of a YAML
// decoder) and parses it.
func FromValue(v any) result.Result[Element] {
	data, err := json.Marshal(v)
	if err != nil {
		return result.Failure[Element](problem.Newf("Unsupported value: %v", err))
	}
	return Parse(data)
}

// Path returns the location of the element, empty for the root.
func (e Element) Path() string {
	return e.path
}

// Raw returns the element's JSON text.
func (e Element) Raw() string {
	return e.value.Raw
}

// Kind returns the JSON type of the element.
func (e Element) Kind() Kind {
	switch e.value.Type {
	case gjson.True, gjson.False:
		return KindBoolean
	case gjson.Number:
		return KindNumber
	case gjson.String:
		return KindString
	case gjson.JSON:
		if e.value.IsArray() {
			return KindArray
		}
		return KindObject
	default:
		return KindNull
	}
}

func (e Element) expected(what string) problem.Problem {
	return problem.Atf(e.path, "Expected %s but found %s", what, e.Kind())
}

// AsObject reads the element as an object.
func (e Element) AsObject() result.Result[Object] {
	if !e.value.IsObject() {
		return result.Failure[Object](e.expected("object"))
	}
	obj, dups := newObject(e)
	if p, ok := dups.Problem(); ok {
		return result.Failure[Object](p)
	}
	return result.Success(obj)
}

// AsArray reads the element as an array.
func (e Element) AsArray() result.Result[Array] {
	if !e.value.IsArray() {
		return result.Failure[Array](e.expected("array"))
	}

	raw := e.value.Array()
	items := make([]Element, len(raw))
	for i, v := range raw {
		items[i] = Element{value: v, path: e.path + "[" + strconv.Itoa(i) + "]"}
	}
	return result.Success(Array{path: e.path, items: items})
}

// AsString reads the element as a string.
func (e Element) AsString() result.Result[string] {
	if e.value.Type != gjson.String {
		return result.Failure[string](e.expected("string"))
	}
	return result.Success(e.value.Str)
}

// AsNumber reads the element as a number.
func (e Element) AsNumber() result.Result[float64] {
	if e.value.Type != gjson.Number {
		return result.Failure[float64](e.expected("number"))
	}
	return result.Success(e.value.Num)
}

// AsInt reads the element as a number without a fractional part.
func (e Element) AsInt() result.Result[int] {
	return result.AndThen(e.AsNumber(), func(n float64) result.Result[int] {
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			return result.Failure[int](problem.Atf(e.path, "Expected integer but found %s", e.value.Raw))
		}
		return result.Success(int(n))
	})
}

// AsBool reads the element as a boolean.
func (e Element) AsBool() result.Result[bool] {
	if e.Kind() != KindBoolean {
		return result.Failure[bool](e.expected("boolean"))
	}
	return result.Success(e.value.Bool())
}

// AsIdentifier reads the element as a namespace:path string. Only the
// syntax is checked; whether the id exists somewhere is not.
func (e Element) AsIdentifier() result.Result[identifier.Identifier] {
	return result.AndThen(e.AsString(), func(s string) result.Result[identifier.Identifier] {
		id, err := identifier.Parse(s)
		if err != nil {
			return result.Failure[identifier.Identifier](problem.Atf(e.path, "Invalid identifier %q", s))
		}
		return result.Success(id)
	})
}

// Array is a JSON array.
type Array struct {
	path  string
	items []Element
}

// Path returns the location of the array.
func (a Array) Path() string {
	return a.path
}

// Len returns the number of elements.
func (a Array) Len() int {
	return len(a.items)
}

// Elements returns the array elements in order.
func (a Array) Elements() []Element {
	out := make([]Element, len(a.items))
	copy(out, a.items)
	return out
}

// ParseEach parses every element with fn and aggregates all failures.
func ParseEach[T any](a Array, fn func(Element) result.Result[T]) result.Result[[]T] {
	results := make([]result.Result[T], len(a.items))
	for i, item := range a.items {
		results[i] = fn(item)
	}
	return result.Collect(results)
}
