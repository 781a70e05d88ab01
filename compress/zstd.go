package compress

// ZstdCodec implements Codec using Zstandard, the selectable alternate
// favoring compression ratio. Compress/Decompress are implemented in
// zstd_cgo.go (valyala/gozstd, cgo) or zstd_pure.go
// (klauspost/compress/zstd, pure Go), split by build tag so a
// cgo-free build still gets Zstd support.
type ZstdCodec struct{}
