package calculation

import (
	"errors"
	"fmt"
)

// invalid stands in for a reference that failed to resolve so one bad name
// does not cascade into type errors further up the tree.
type invalid struct{}

func (invalid) kind() Kind   { return nil }
func (invalid) eval(any) any { return 0.0 }

type parser struct {
	tokens    []token
	pos       int
	root      Kind
	lookupVar func(name string) (*variable, bool)

	refs     []*variable
	problems []string
}

// compile parses src against the root kind. Syntax errors stop parsing and
// are returned as err; resolution and type errors are collected.
func compile(src string, root Kind, lookupVar func(string) (*variable, bool)) (n node, refs []*variable, problems []string, err error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, nil, nil, err
	}

	p := &parser{tokens: tokens, root: root, lookupVar: lookupVar}
	defer func() {
		if r := recover(); r != nil {
			var se *syntaxError
			rerr, ok := r.(error)
			if !ok || !errors.As(rerr, &se) {
				panic(r)
			}
			n, refs, problems, err = nil, nil, nil, se
		}
	}()

	n = p.expr()
	if t := p.peek(); t.kind != tokenEOF {
		p.fail(t, "Unexpected %s", t)
	}
	p.requireNumber(n, "expression")
	return n, p.refs, p.problems, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) isSymbol(c byte) bool {
	t := p.peek()
	return t.kind == tokenSymbol && t.text[0] == c
}

func (p *parser) accept(c byte) bool {
	if p.isSymbol(c) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(c byte) {
	if !p.accept(c) {
		t := p.peek()
		p.fail(t, "Expected `%c` but found %s", c, t)
	}
}

func (p *parser) fail(t token, format string, args ...any) {
	panic(&syntaxError{pos: t.pos, msg: fmt.Sprintf(format, args...)})
}

func (p *parser) report(format string, args ...any) {
	p.problems = append(p.problems, fmt.Sprintf(format, args...))
}

func (p *parser) requireNumber(n node, what string) {
	k := n.kind()
	if k == nil || k.ID() == Number.ID() {
		return
	}
	p.report("Expected number for %s but found %s", what, k.ID())
}

func (p *parser) expr() node {
	left := p.term()
	for p.isSymbol('+') || p.isSymbol('-') {
		op := p.next()
		right := p.term()
		left = p.arith(op, left, right)
	}
	return left
}

func (p *parser) term() node {
	left := p.unary()
	for p.isSymbol('*') || p.isSymbol('/') || p.isSymbol('%') {
		op := p.next()
		right := p.unary()
		left = p.arith(op, left, right)
	}
	return left
}

func (p *parser) unary() node {
	if p.isSymbol('-') || p.isSymbol('+') {
		op := p.next()
		x := p.unary()
		p.requireNumber(x, "operand of `"+op.text+"`")
		if op.text == "+" {
			return x
		}
		return negate{x: x}
	}
	return p.power()
}

func (p *parser) power() node {
	base := p.postfix()
	if p.isSymbol('^') {
		op := p.next()
		exp := p.unary()
		return p.arith(op, base, exp)
	}
	return base
}

func (p *parser) arith(op token, left, right node) node {
	p.requireNumber(left, "left operand of `"+op.text+"`")
	p.requireNumber(right, "right operand of `"+op.text+"`")
	return binary{op: op.text[0], left: left, right: right}
}

func (p *parser) postfix() node {
	n := p.primary()
	for p.accept('.') {
		name := p.next()
		if name.kind != tokenName {
			p.fail(name, "Expected operation name after `.` but found %s", name)
		}
		n = p.call(name, n)
	}
	return n
}

func (p *parser) primary() node {
	t := p.next()
	switch {
	case t.kind == tokenNumber:
		return literal{value: t.value}
	case t.kind == tokenName:
		if p.isSymbol('(') {
			return p.call(t, nil)
		}
		return p.variable(t)
	case t.kind == tokenSymbol && t.text == "(":
		n := p.expr()
		p.expect(')')
		return n
	default:
		p.fail(t, "Unexpected %s", t)
		return nil
	}
}

func (p *parser) variable(t token) node {
	if v, ok := p.lookupVar(t.text); ok {
		p.refs = append(p.refs, v)
		return variableRef{v: v}
	}
	if _, msg := p.root.resolve(t.text); msg == "" {
		p.report("Unknown variable `%s`, did you mean `%s()`", t.text, t.text)
	} else {
		p.report("Unknown variable `%s`", t.text)
	}
	return invalid{}
}

// call parses the argument list after name. Zero-argument calls are
// operations on the receiver kind (the root kind when receiver is nil);
// calls with arguments are math functions.
func (p *parser) call(name token, receiver node) node {
	p.expect('(')

	if p.accept(')') {
		k := p.root
		if receiver != nil {
			k = receiver.kind()
			if k == nil {
				return invalid{}
			}
		}
		op, msg := k.resolve(name.text)
		if msg != "" {
			if fn, ok := functions[name.text]; ok && receiver == nil {
				p.report("Function `%s` expects at least %d argument(s)", fn.name, fn.minArgs)
			} else {
				p.report("%s", msg)
			}
			return invalid{}
		}
		return operationRef{op: op, receiver: receiver}
	}

	var args []node
	for {
		arg := p.expr()
		p.requireNumber(arg, "argument of `"+name.text+"`")
		args = append(args, arg)
		if !p.accept(',') {
			break
		}
	}
	p.expect(')')

	if receiver != nil {
		p.report("Operation `%s` does not take arguments", name.text)
		return invalid{}
	}
	fn, ok := functions[name.text]
	if !ok {
		p.report("Unknown function `%s`", name.text)
		return invalid{}
	}
	if !fn.accepts(len(args)) {
		p.report("Function `%s` does not accept %d argument(s)", fn.name, len(args))
		return invalid{}
	}
	return call{fn: fn, args: args}
}
