// Package identifier implements the namespaced names used as registry keys
// and as the public handle for rewards, experience sources and categories.
package identifier

import (
	"strings"

	"github.com/lamali292/one-piece-api/internal/errors"
)

const (
	// DefaultNamespace is assumed when a string carries no namespace.
	DefaultNamespace = "minecraft"

	// ModNamespace is the namespace of the identifiers this module registers.
	ModNamespace = "one_piece_api"

	separator = ":"
)

// Identifier is an immutable namespace:path pair. Two identifiers are equal
// iff both parts match exactly, so the struct can be compared with ==.
type Identifier struct {
	namespace string
	path      string
}

// New validates both parts and builds an identifier.
func New(namespace, path string) (Identifier, error) {
	if err := validateNamespace(namespace); err != nil {
		return Identifier{}, err
	}
	if err := validatePath(path); err != nil {
		return Identifier{}, err
	}
	return Identifier{namespace: namespace, path: path}, nil
}

// Parse reads the textual namespace:path form. A string without a separator
// uses DefaultNamespace.
func Parse(s string) (Identifier, error) {
	namespace, path, found := strings.Cut(s, separator)
	if !found {
		return New(DefaultNamespace, s)
	}
	id, err := New(namespace, path)
	if err != nil {
		return Identifier{}, errors.Wrapf(err, "invalid identifier %q", s)
	}
	return id, nil
}

// MustParse is Parse for identifiers known at compile time.
func MustParse(s string) Identifier {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Mod returns an identifier in ModNamespace.
func Mod(path string) Identifier {
	id, err := New(ModNamespace, path)
	if err != nil {
		panic(err)
	}
	return id
}

// Namespace returns the namespace part.
func (i Identifier) Namespace() string {
	return i.namespace
}

// Path returns the path part.
func (i Identifier) Path() string {
	return i.path
}

// IsZero reports whether i is the zero value.
func (i Identifier) IsZero() bool {
	return i.namespace == "" && i.path == ""
}

func (i Identifier) String() string {
	if i.IsZero() {
		return ""
	}
	return i.namespace + separator + i.path
}

// MarshalText implements encoding.TextMarshaler.
func (i Identifier) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Identifier) UnmarshalText(text []byte) error {
	id, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = id
	return nil
}

func validateNamespace(namespace string) error {
	if namespace == "" {
		return errors.InvalidArgument("namespace cannot be empty")
	}
	for _, r := range namespace {
		if !isNamespaceRune(r) {
			return errors.InvalidArgumentf("non [a-z0-9_.-] character %q in namespace %q", r, namespace)
		}
	}
	return nil
}

func validatePath(path string) error {
	if path == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	for _, r := range path {
		if !isNamespaceRune(r) && r != '/' {
			return errors.InvalidArgumentf("non [a-z0-9/._-] character %q in path %q", r, path)
		}
	}
	return nil
}

func isNamespaceRune(r rune) bool {
	return r == '_' || r == '-' || r == '.' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
