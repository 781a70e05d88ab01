package compress

// NoOpCodec passes data through unchanged, for entries whose
// compression tag is None.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
