package jsonvalue

import (
	"github.com/tidwall/sjson"

	"github.com/lamali292/one-piece-api/internal/errors"
)

// Builder assembles a JSON object with sjson paths. The first failing call
// short-circuits the rest.
type Builder struct {
	raw string
	err error
}

// NewBuilder starts an empty object.
func NewBuilder() *Builder {
	return &Builder{raw: "{}"}
}

// Set stores v at path.
func (b *Builder) Set(path string, v any) *Builder {
	if b.err != nil {
		return b
	}
	raw, err := sjson.Set(b.raw, path, v)
	if err != nil {
		b.err = errors.Wrapf(err, "failed to set %s", path)
		return b
	}
	b.raw = raw
	return b
}

// SetRaw stores already encoded JSON at path.
func (b *Builder) SetRaw(path string, raw []byte) *Builder {
	if b.err != nil {
		return b
	}
	out, err := sjson.SetRaw(b.raw, path, string(raw))
	if err != nil {
		b.err = errors.Wrapf(err, "failed to set %s", path)
		return b
	}
	b.raw = out
	return b
}

// Bytes returns the document.
func (b *Builder) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return []byte(b.raw), nil
}
