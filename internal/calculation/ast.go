package calculation

import (
	"math"
)

// node is one vertex of a type-checked expression tree. eval receives the
// root context data and returns a value of the node's kind.
type node interface {
	kind() Kind
	eval(data any) any
}

func number(n node, data any) float64 {
	return n.eval(data).(float64)
}

type literal struct {
	value float64
}

func (literal) kind() Kind     { return Number }
func (l literal) eval(any) any { return l.value }

// operationRef applies op to the receiver's value, or to the context data
// when receiver is nil.
type operationRef struct {
	op       *operation
	receiver node
}

func (o operationRef) kind() Kind { return o.op.result }

func (o operationRef) eval(data any) any {
	in := data
	if o.receiver != nil {
		in = o.receiver.eval(data)
	}
	return o.op.apply(in)
}

type variableRef struct {
	v *variable
}

func (variableRef) kind() Kind { return Number }

func (r variableRef) eval(data any) any {
	return r.v.expr.eval(data)
}

type negate struct {
	x node
}

func (negate) kind() Kind { return Number }

func (n negate) eval(data any) any {
	return -number(n.x, data)
}

type binary struct {
	op          byte
	left, right node
}

func (binary) kind() Kind { return Number }

func (b binary) eval(data any) any {
	l, r := number(b.left, data), number(b.right, data)
	switch b.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	case '%':
		return math.Mod(l, r)
	case '^':
		return math.Pow(l, r)
	}
	panic("calculation: unknown operator " + string(b.op))
}

type call struct {
	fn   *function
	args []node
}

func (call) kind() Kind { return Number }

func (c call) eval(data any) any {
	args := make([]float64, len(c.args))
	for i, a := range c.args {
		args[i] = number(a, data)
	}
	return c.fn.apply(args)
}
