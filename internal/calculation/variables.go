package calculation

import (
	"github.com/lamali292/one-piece-api/internal/jsonvalue"
	"github.com/lamali292/one-piece-api/internal/problem"
	"github.com/lamali292/one-piece-api/internal/result"
)

type variable struct {
	name string
	path string
	expr node
	form any
	deps []*variable
}

// Variables is an ordered set of named number expressions over D. A
// variable may reference the operations of the prototype and any variable
// declared before it.
type Variables[D any] struct {
	prototype *Prototype[D]
	order     []*variable
	byName    map[string]*variable
}

// NewVariables creates an empty set bound to p.
func NewVariables[D any](p *Prototype[D]) *Variables[D] {
	return &Variables[D]{
		prototype: p,
		byName:    make(map[string]*variable),
	}
}

// ParseVariables reads a JSON object of name to number or expression
// string. Every variable is attempted and all failures are combined.
func ParseVariables[D any](e jsonvalue.Element, p *Prototype[D]) result.Result[*Variables[D]] {
	return result.AndThen(e.AsObject(), func(obj jsonvalue.Object) result.Result[*Variables[D]] {
		vars := NewVariables(p)
		var c problem.Collector

		for _, m := range obj.Members() {
			if !validVariableName(m.Key) {
				c.Add(problem.Atf(m.Value.Path(), "Invalid variable name `%s`", m.Key))
				continue
			}
			v := &variable{name: m.Key, path: m.Value.Path(), expr: invalid{}}
			if compiled, ok := result.Track(compileForm(m.Value, p, vars.lookup), &c); ok {
				v.expr, v.form, v.deps = compiled.expr, compiled.form, compiled.refs
			}
			vars.add(v)
		}

		if pr, failed := c.Problem(); failed {
			return result.Failure[*Variables[D]](pr)
		}
		return result.Success(vars)
	})
}

func validVariableName(name string) bool {
	if name == "" || !isNameStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isNameRune(name[i]) {
			return false
		}
	}
	return true
}

func (v *Variables[D]) add(vr *variable) {
	v.order = append(v.order, vr)
	v.byName[vr.name] = vr
}

func (v *Variables[D]) lookup(name string) (*variable, bool) {
	vr, ok := v.byName[name]
	return vr, ok
}

// Prototype returns the prototype the variables are bound to.
func (v *Variables[D]) Prototype() *Prototype[D] {
	return v.prototype
}

// Len returns the number of variables.
func (v *Variables[D]) Len() int {
	return len(v.order)
}

// Names returns variable names in declaration order.
func (v *Variables[D]) Names() []string {
	out := make([]string, len(v.order))
	for i, vr := range v.order {
		out[i] = vr.name
	}
	return out
}

// Form returns the JSON form a variable was declared with: a float64 for
// constants or the expression string.
func (v *Variables[D]) Form(name string) (any, bool) {
	vr, ok := v.byName[name]
	if !ok {
		return nil, false
	}
	return vr.form, true
}

// Evaluate computes a single variable.
func (v *Variables[D]) Evaluate(name string, data D) (float64, bool) {
	vr, ok := v.byName[name]
	if !ok {
		return 0, false
	}
	return number(vr.expr, any(data)), true
}

// unused returns variables not reachable from refs, in declaration order.
func (v *Variables[D]) unused(refs []*variable) []*variable {
	reached := make(map[*variable]bool)
	var visit func(vr *variable)
	visit = func(vr *variable) {
		if reached[vr] {
			return
		}
		reached[vr] = true
		for _, d := range vr.deps {
			visit(d)
		}
	}
	for _, r := range refs {
		visit(r)
	}

	var out []*variable
	for _, vr := range v.order {
		if !reached[vr] {
			out = append(out, vr)
		}
	}
	return out
}
