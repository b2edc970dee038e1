package calculation

import (
	"fmt"

	"github.com/lamali292/one-piece-api/internal/jsonvalue"
	"github.com/lamali292/one-piece-api/internal/problem"
	"github.com/lamali292/one-piece-api/internal/result"
)

// Warner receives non-fatal remarks, such as unused variables.
type Warner interface {
	EmitWarning(message string)
}

// Calculation is an immutable number expression over D.
type Calculation[D any] struct {
	root node
	form any
}

// Constant returns a calculation that always yields value.
func Constant[D any](value float64) *Calculation[D] {
	return &Calculation[D]{root: literal{value: value}, form: value}
}

// ParseCalculation reads a number or expression string resolved against
// vars. Variables the calculation never reaches are reported to w.
func ParseCalculation[D any](e jsonvalue.Element, vars *Variables[D], w Warner) result.Result[*Calculation[D]] {
	return result.Map(compileForm(e, vars.prototype, vars.lookup), func(c compiled) *Calculation[D] {
		if w != nil {
			for _, vr := range vars.unused(c.refs) {
				w.EmitWarning(fmt.Sprintf("Unused variable `%s` at `%s`", vr.name, vr.path))
			}
		}
		return &Calculation[D]{root: c.expr, form: c.form}
	})
}

// Compile parses an expression string without a surrounding document.
func Compile[D any](expression string, vars *Variables[D]) result.Result[*Calculation[D]] {
	return result.Map(compileSource("", expression, vars.prototype, vars.lookup), func(c compiled) *Calculation[D] {
		return &Calculation[D]{root: c.expr, form: c.form}
	})
}

// Evaluate computes the calculation for data. It has no side effects.
func (c *Calculation[D]) Evaluate(data D) float64 {
	return number(c.root, any(data))
}

// IsConstant reports whether the calculation is a plain number.
func (c *Calculation[D]) IsConstant() bool {
	_, ok := c.root.(literal)
	return ok
}

// Form returns the JSON form of the calculation: a float64 for constants,
// the expression string otherwise.
func (c *Calculation[D]) Form() any {
	return c.form
}

func (c *Calculation[D]) String() string {
	if s, ok := c.form.(string); ok {
		return s
	}
	return fmt.Sprint(c.form)
}

type compiled struct {
	expr node
	form any
	refs []*variable
}

func compileForm(e jsonvalue.Element, root Kind, lookup func(string) (*variable, bool)) result.Result[compiled] {
	switch e.Kind() {
	case jsonvalue.KindNumber:
		value := e.AsNumber().OrDefault(0)
		return result.Success(compiled{expr: literal{value: value}, form: value})
	case jsonvalue.KindString:
		src := e.AsString().OrDefault("")
		return compileSource(e.Path(), src, root, lookup)
	default:
		return result.Failure[compiled](problem.Atf(e.Path(), "Expected number or expression but found %s", e.Kind()))
	}
}

func compileSource(path, src string, root Kind, lookup func(string) (*variable, bool)) result.Result[compiled] {
	expr, refs, messages, err := compile(src, root, lookup)
	if err != nil {
		return result.Failure[compiled](problem.Atf(path, "%s in expression `%s`", err.Error(), src))
	}
	if len(messages) > 0 {
		problems := make([]problem.Problem, len(messages))
		for i, msg := range messages {
			problems[i] = problem.Atf(path, "%s in expression `%s`", msg, src)
		}
		pr, _ := problem.CombineAll(problems)
		return result.Failure[compiled](pr)
	}
	return result.Success(compiled{expr: expr, form: src, refs: refs})
}
