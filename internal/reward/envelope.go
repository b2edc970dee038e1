package reward

import (
	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/jsonvalue"
)

// Envelope writes a reward as {"type": id, "data": ...}.
func Envelope(id identifier.Identifier, r Reward) ([]byte, error) {
	enc, ok := r.(Encoder)
	if !ok {
		return nil, errors.Unimplementedf("reward %s cannot be encoded", id)
	}
	data, err := enc.ToJSON()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode reward %s", id)
	}
	return jsonvalue.NewBuilder().
		Set("type", id.String()).
		SetRaw("data", data).
		Bytes()
}
