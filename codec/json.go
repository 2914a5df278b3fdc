package codec

import (
	"bytes"
	"encoding/json"
)

// JSON is the default codec. The zero value is ready to use and matches
// json.Marshal/json.Unmarshal.
type JSON[V any] struct {
	// Strict fails Decode on object keys V has no field for, so entries
	// written by an incompatible version of V surface as decode errors.
	Strict bool
}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }

func (c JSON[V]) Decode(b []byte) (V, error) {
	var v V
	if !c.Strict {
		err := json.Unmarshal(b, &v)
		return v, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	err := dec.Decode(&v)
	return v, err
}
