package codec

// Bytes stores []byte values unchanged. Decode copies, so callers may modify
// the result without touching the driver's string.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return append([]byte(nil), b...), nil }

// String stores Go strings as-is. No UTF-8 validation, so it also carries
// payloads produced elsewhere (pre-rendered HTML, upstream JSON) verbatim.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
