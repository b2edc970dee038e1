package experience

import (
	"github.com/lamali292/one-piece-api/internal/calculation"
	"github.com/lamali292/one-piece-api/internal/jsonvalue"
	"github.com/lamali292/one-piece-api/internal/problem"
	"github.com/lamali292/one-piece-api/internal/result"
)

// formula is the {variables?, experience} body every source shares.
type formula[D any] struct {
	vars *calculation.Variables[D]
	calc *calculation.Calculation[D]
}

func parseFormula[D any](ctx jsonvalue.ConfigContext, p *calculation.Prototype[D]) result.Result[formula[D]] {
	return result.AndThen(result.AndThen(ctx.Data(), jsonvalue.Element.AsObject),
		func(obj jsonvalue.Object) result.Result[formula[D]] {
			return jsonvalue.NoUnused(obj, func(o jsonvalue.Object) result.Result[formula[D]] {
				var c problem.Collector

				vars := calculation.NewVariables(p)
				if e, ok := o.Optional("variables"); ok {
					if parsed, ok := result.Track(calculation.ParseVariables(e, p), &c); ok {
						vars = parsed
					}
				}

				calc, _ := result.Track(result.AndThen(o.Get("experience"), func(e jsonvalue.Element) result.Result[*calculation.Calculation[D]] {
					return calculation.ParseCalculation(e, vars, ctx)
				}), &c)

				if pr, failed := c.Problem(); failed {
					return result.Failure[formula[D]](pr)
				}
				return result.Success(formula[D]{vars: vars, calc: calc})
			})
		})
}

func (f formula[D]) evaluate(data D) int {
	return Round(f.calc.Evaluate(data))
}

func (f formula[D]) toJSON() ([]byte, error) {
	b := jsonvalue.NewBuilder()
	for _, name := range f.vars.Names() {
		form, _ := f.vars.Form(name)
		b.Set("variables."+name, form)
	}
	return b.Set("experience", f.calc.Form()).Bytes()
}
