package jsonvalue

import (
	"github.com/tidwall/gjson"

	"github.com/lamali292/one-piece-api/internal/problem"
	"github.com/lamali292/one-piece-api/internal/result"
)

// Object is a JSON object. It remembers which keys were read so NoUnused
// can report fields nobody consumed. Copies share that bookkeeping.
type Object struct {
	path   string
	keys   []string
	values map[string]gjson.Result
	used   map[string]bool
}

// newObject indexes the members of e. A key that appears more than once is
// reported once per repeat.
func newObject(e Element) (Object, *problem.Collector) {
	obj := Object{
		path:   e.path,
		values: make(map[string]gjson.Result),
		used:   make(map[string]bool),
	}
	dups := &problem.Collector{}
	e.value.ForEach(func(key, value gjson.Result) bool {
		if _, seen := obj.values[key.Str]; seen {
			dups.Add(problem.Atf(e.path, "Duplicate field `%s`", key.Str))
			return true
		}
		obj.keys = append(obj.keys, key.Str)
		obj.values[key.Str] = value
		return true
	})
	return obj, dups
}

// Path returns the location of the object.
func (o Object) Path() string {
	return o.path
}

// Keys returns the keys in document order.
func (o Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of keys.
func (o Object) Len() int {
	return len(o.keys)
}

func (o Object) child(key string) Element {
	path := key
	if o.path != "" {
		path = o.path + "." + key
	}
	return Element{value: o.values[key], path: path}
}

// Get returns a required member.
func (o Object) Get(key string) result.Result[Element] {
	if _, ok := o.values[key]; !ok {
		return result.Failure[Element](problem.Atf(o.path, "Missing field `%s`", key))
	}
	o.used[key] = true
	return result.Success(o.child(key))
}

// Optional returns a member if present.
func (o Object) Optional(key string) (Element, bool) {
	if _, ok := o.values[key]; !ok {
		return Element{}, false
	}
	o.used[key] = true
	return o.child(key), true
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Element
}

// Members returns every member in document order and marks them all read.
func (o Object) Members() []Member {
	out := make([]Member, len(o.keys))
	for i, key := range o.keys {
		o.used[key] = true
		out[i] = Member{Key: key, Value: o.child(key)}
	}
	return out
}

// Unused returns the keys that were never read, in document order.
func (o Object) Unused() []string {
	var out []string
	for _, key := range o.keys {
		if !o.used[key] {
			out = append(out, key)
		}
	}
	return out
}

// NoUnused runs fn on obj and then reports every key fn did not read.
// Unused fields are combined with fn's own problems.
func NoUnused[T any](obj Object, fn func(Object) result.Result[T]) result.Result[T] {
	r := fn(obj)

	var c problem.Collector
	if p, failed := r.Problem(); failed {
		c.Add(p)
	}
	for _, key := range obj.Unused() {
		c.Add(problem.Atf(obj.path, "Unused field `%s`", key))
	}

	if p, failed := c.Problem(); failed {
		return result.Failure[T](p)
	}
	return r
}
