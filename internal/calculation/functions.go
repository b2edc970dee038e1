package calculation

import (
	"math"
)

// function is a built-in math function. maxArgs < 0 means variadic.
type function struct {
	name    string
	minArgs int
	maxArgs int
	apply   func(args []float64) float64
}

var functions = map[string]*function{
	"min":   {name: "min", minArgs: 1, maxArgs: -1, apply: fold(math.Min)},
	"max":   {name: "max", minArgs: 1, maxArgs: -1, apply: fold(math.Max)},
	"abs":   {name: "abs", minArgs: 1, maxArgs: 1, apply: unary(math.Abs)},
	"floor": {name: "floor", minArgs: 1, maxArgs: 1, apply: unary(math.Floor)},
	"ceil":  {name: "ceil", minArgs: 1, maxArgs: 1, apply: unary(math.Ceil)},
	"round": {name: "round", minArgs: 1, maxArgs: 1, apply: unary(RoundHalfUp)},
	"sqrt":  {name: "sqrt", minArgs: 1, maxArgs: 1, apply: unary(math.Sqrt)},
	"pow": {name: "pow", minArgs: 2, maxArgs: 2, apply: func(args []float64) float64 {
		return math.Pow(args[0], args[1])
	}},
	"clamp": {name: "clamp", minArgs: 3, maxArgs: 3, apply: func(args []float64) float64 {
		return math.Max(args[1], math.Min(args[2], args[0]))
	}},
}

func (f *function) accepts(n int) bool {
	return n >= f.minArgs && (f.maxArgs < 0 || n <= f.maxArgs)
}

func unary(fn func(float64) float64) func([]float64) float64 {
	return func(args []float64) float64 {
		return fn(args[0])
	}
}

func fold(fn func(a, b float64) float64) func([]float64) float64 {
	return func(args []float64) float64 {
		acc := args[0]
		for _, a := range args[1:] {
			acc = fn(acc, a)
		}
		return acc
	}
}

// RoundHalfUp rounds to the nearest integer, halves toward positive
// infinity.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
