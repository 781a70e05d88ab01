// Package compress provides pluggable compression codecs for VDK asset
// payloads. VDK entry records carry no field naming their codec; the
// caller picks one (vdk.WithCodec/WithCodecType), and Get turns a Type
// into a built-in Codec.
package compress

import "fmt"

// Type identifies a compression algorithm. The on-disk format only
// ever produced Deflate; the others are alternates a caller can select.
type Type uint8

const (
	None Type = iota
	Deflate
	LZ4
	S2
	Zstd
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Deflate:
		return "deflate"
	case LZ4:
		return "lz4"
	case S2:
		return "s2"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Compressor compresses a byte payload.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte payload previously produced by the
// matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	None:    NoOpCodec{},
	Deflate: DeflateCodec{},
	LZ4:     LZ4Codec{},
	S2:      S2Codec{},
	Zstd:    ZstdCodec{},
}

// Get retrieves the built-in Codec for t.
func Get(t Type) (Codec, error) {
	if c, ok := builtinCodecs[t]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("compress: unsupported compression type %s", t)
}
