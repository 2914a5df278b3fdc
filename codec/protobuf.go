package codec

import (
	"errors"

	"google.golang.org/protobuf/proto"
)

var errNoCtor = errors.New("protobuf codec: constructed without NewProtobuf")

// Protobuf serializes generated protobuf messages.
// Construct with NewProtobuf so Decode knows which concrete message to allocate.
// Encoding is deterministic: equal messages give equal stored strings, map
// fields included.
type Protobuf[T proto.Message] struct {
	new func() T // e.g. func() *pb.User { return &pb.User{} }
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	if c.new == nil {
		var zero T
		return zero, errNoCtor
	}
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
