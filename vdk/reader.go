package vdk

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/JordanRO2/RO2-Table-Converter/compress"
	"github.com/JordanRO2/RO2-Table-Converter/internal/options"
)

type config struct {
	codec compress.Codec
}

// Option configures Extract. See WithCodec and WithCodecType.
type Option = options.Option[*config]

// WithCodec overrides the codec Extract uses to decompress file
// entries. The default is compress.DeflateCodec{}, the only codec the
// archive format is known to have actually produced.
func WithCodec(c compress.Codec) Option {
	return options.NoError[*config](func(cfg *config) { cfg.codec = c })
}

// WithCodecType selects a built-in codec by Type.
func WithCodecType(t compress.Type) Option {
	return options.New[*config](func(cfg *config) error {
		c, err := compress.Get(t)
		if err != nil {
			return err
		}
		cfg.codec = c

		return nil
	})
}

// Extract reads a VDK archive from r and writes its directory tree
// under destRoot, decompressing each file entry with the configured
// codec. It returns the archive's Header for callers that want its
// reported file/dir counts.
//
// Archives are read strictly sequentially; there is no random access
// to individual entries, matching how the source format itself only
// ever walked an archive front to back.
func Extract(r io.Reader, destRoot string, opts ...Option) (Header, error) {
	cfg := &config{codec: compress.DeflateCodec{}}
	if err := options.Apply[*config](cfg, opts...); err != nil {
		return Header{}, err
	}

	hdr, err := ParseHeader(r)
	if err != nil {
		return Header{}, err
	}

	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		return hdr, fmt.Errorf("vdk: create %s: %w", destRoot, err)
	}

	if err := extractDir(r, destRoot, cfg.codec); err != nil {
		return hdr, err
	}

	return hdr, nil
}

func extractDir(r io.Reader, dir string, codec compress.Codec) error {
	for {
		entry, err := parseEntry(r)
		if err != nil {
			return fmt.Errorf("vdk: read entry in %s: %w", dir, err)
		}

		if entry.IsDir {
			if entry.Name != "." && entry.Name != ".." {
				child := filepath.Join(dir, entry.Name)
				if err := os.MkdirAll(child, 0o755); err != nil {
					return fmt.Errorf("vdk: create %s: %w", child, err)
				}
				if err := extractDir(r, child, codec); err != nil {
					return err
				}
			}
		} else {
			data := make([]byte, entry.CompressedSize)
			if _, err := io.ReadFull(r, data); err != nil {
				return fmt.Errorf("vdk: read payload for %s: %w", entry.Name, err)
			}

			out, err := codec.Decompress(data)
			if err != nil {
				// The source reader fell back to the raw bytes when
				// zlib decompression failed rather than aborting the
				// whole extraction; mirrored here.
				out = data
			}

			path := filepath.Join(dir, entry.Name)
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return fmt.Errorf("vdk: write %s: %w", path, err)
			}
		}

		if entry.NextOffset == 0 {
			return nil
		}
	}
}
