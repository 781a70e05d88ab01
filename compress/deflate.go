package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// DeflateCodec implements the zlib-wrapped DEFLATE stream VDK assets
// were historically compressed with (the original reader called
// zlib.decompressobj() with no window-bits override, which assumes the
// standard two-byte zlib header rather than a raw DEFLATE stream).
type DeflateCodec struct{}

var _ Codec = DeflateCodec{}

func (DeflateCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: deflate compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: deflate compress: %w", err)
	}

	return buf.Bytes(), nil
}

func (DeflateCodec) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("compress: deflate decompress: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compress: deflate decompress: %w", err)
	}

	return out, nil
}
