package jsonvalue

import (
	"sync"

	"github.com/lamali292/one-piece-api/internal/result"
)

// ConfigContext is what a behavior factory receives: the data to parse and
// a sink for non-fatal remarks about it.
type ConfigContext interface {
	Data() result.Result[Element]
	EmitWarning(message string)
}

// Warnings collects warnings emitted while a data pack loads.
type Warnings struct {
	mu   sync.Mutex
	list []string
}

// Add records a warning.
func (w *Warnings) Add(message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.list = append(w.list, message)
}

// List returns the warnings recorded so far.
func (w *Warnings) List() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.list))
	copy(out, w.list)
	return out
}

// Context is the ConfigContext used by the loader.
type Context struct {
	data     result.Result[Element]
	warnings *Warnings
}

var _ ConfigContext = (*Context)(nil)

// NewContext creates a context over data. A nil warnings sink gets a fresh
// one.
func NewContext(data result.Result[Element], warnings *Warnings) *Context {
	if warnings == nil {
		warnings = &Warnings{}
	}
	return &Context{data: data, warnings: warnings}
}

// ForElement is NewContext for data that is known to be present.
func ForElement(e Element, warnings *Warnings) *Context {
	return NewContext(result.Success(e), warnings)
}

// Data returns the data to parse.
func (c *Context) Data() result.Result[Element] {
	return c.data
}

// EmitWarning records message.
func (c *Context) EmitWarning(message string) {
	c.warnings.Add(message)
}

// Child returns a context over other data sharing the same warning sink.
func (c *Context) Child(data result.Result[Element]) *Context {
	return &Context{data: data, warnings: c.warnings}
}

// Warnings returns the warnings emitted through this context and its
// children.
func (c *Context) Warnings() []string {
	return c.warnings.List()
}
