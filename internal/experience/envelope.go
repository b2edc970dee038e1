package experience

import (
	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/jsonvalue"
)

// Envelope writes a source as {"type": id, "data": ...}.
func Envelope(id identifier.Identifier, s Source) ([]byte, error) {
	enc, ok := s.(Encoder)
	if !ok {
		return nil, errors.Unimplementedf("experience source %s cannot be encoded", id)
	}
	data, err := enc.ToJSON()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode experience source %s", id)
	}
	return jsonvalue.NewBuilder().
		Set("type", id.String()).
		SetRaw("data", data).
		Bytes()
}
