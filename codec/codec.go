// Package codec holds the serializer/deserializer strategies a resource uses
// to turn values into the strings a driver stores.
//
// Every codec must round-trip: Decode(Encode(v)) is structurally equal to v
// for every value the codec supports.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// Funcs adapts a plain serializer/deserializer pair to Codec.
// Both functions must be set and must be inverses of each other.
type Funcs[V any] struct {
	Serialize   func(V) (string, error)
	Deserialize func(string) (V, error)
}

var _ Codec[struct{}] = Funcs[struct{}]{}

func (f Funcs[V]) Encode(v V) ([]byte, error) {
	s, err := f.Serialize(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (f Funcs[V]) Decode(b []byte) (V, error) { return f.Deserialize(string(b)) }
