// Package problem models parse and validation failures that are reported to
// data-pack authors. A Problem is either a single leaf or a composite of
// leaves; composites are always flattened so combining never nests and
// never drops a message.
package problem

import (
	"fmt"
	"strings"

	"github.com/lamali292/one-piece-api/internal/errors"
)

// Leaf is one atomic failure.
type Leaf struct {
	// Path locates the offending value, for example data.abilities[0].
	// It is empty when the failure is not tied to a location.
	Path    string
	Message string
}

func (l Leaf) String() string {
	if l.Path == "" {
		return l.Message
	}
	return fmt.Sprintf("%s at `%s`", l.Message, l.Path)
}

// Problem is an immutable, ordered, non-empty set of leaves. The zero value
// holds no leaves and is only produced by a zero Result.
type Problem struct {
	leaves []Leaf
}

// New creates an atomic problem without a location.
func New(message string) Problem {
	return Problem{leaves: []Leaf{{Message: message}}}
}

// Newf creates an atomic problem with a formatted message.
func Newf(format string, args ...any) Problem {
	return New(fmt.Sprintf(format, args...))
}

// At creates an atomic problem located at path.
func At(path, message string) Problem {
	return Problem{leaves: []Leaf{{Path: path, Message: message}}}
}

// Atf creates a located problem with a formatted message.
func Atf(path, format string, args ...any) Problem {
	return At(path, fmt.Sprintf(format, args...))
}

// Combine merges problems into one composite, keeping leaf order.
func Combine(p Problem, more ...Problem) Problem {
	n := len(p.leaves)
	for _, m := range more {
		n += len(m.leaves)
	}

	leaves := make([]Leaf, 0, n)
	leaves = append(leaves, p.leaves...)
	for _, m := range more {
		leaves = append(leaves, m.leaves...)
	}
	return Problem{leaves: leaves}
}

// CombineAll merges a slice of problems. It reports false for an empty slice.
func CombineAll(problems []Problem) (Problem, bool) {
	if len(problems) == 0 {
		return Problem{}, false
	}
	return Combine(problems[0], problems[1:]...), true
}

// Leaves returns a copy of the atomic failures.
func (p Problem) Leaves() []Leaf {
	out := make([]Leaf, len(p.leaves))
	copy(out, p.leaves)
	return out
}

// Messages renders every leaf.
func (p Problem) Messages() []string {
	out := make([]string, len(p.leaves))
	for i, l := range p.leaves {
		out[i] = l.String()
	}
	return out
}

// IsComposite reports whether the problem holds more than one leaf.
func (p Problem) IsComposite() bool {
	return len(p.leaves) > 1
}

// IsZero reports whether the problem holds no leaves.
func (p Problem) IsZero() bool {
	return len(p.leaves) == 0
}

// Contains reports whether any leaf message contains substr.
func (p Problem) Contains(substr string) bool {
	for _, l := range p.leaves {
		if strings.Contains(l.Message, substr) {
			return true
		}
	}
	return false
}

func (p Problem) Error() string {
	switch len(p.leaves) {
	case 0:
		return "unknown problem"
	case 1:
		return p.leaves[0].String()
	default:
		return strings.Join(p.Messages(), "; ")
	}
}

// ToError converts the problem to an INVALID_ARGUMENT error carrying every
// rendered leaf under the "problems" meta key.
func (p Problem) ToError() *errors.Error {
	return errors.InvalidArgument(p.Error()).WithMeta("problems", p.Messages())
}
