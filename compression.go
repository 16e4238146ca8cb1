package bio

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Compressor is the collaborator interface for the outer frame's
// FlagCompressed channel (spec.md §4.2, §9 "Compressor"). Codec calls
// Compress on encode when compression is enabled and the payload clears
// the configured threshold, and Decompress on decode when FlagCompressed
// is set.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte, originalSize int) ([]byte, error)
}

// zstdCompressor is the default Compressor, grounded on
// bureau-foundation-bureau/lib/artifactstore/compress.go's reused
// package-level encoder/decoder pair (zstd.Encoder/Decoder are safe for
// concurrent use, so one pair serves every Codec instance).
type zstdCompressor struct{}

var (
	zstdEncoderOnce sync.Once
	zstdEncoder     *zstd.Encoder
	zstdEncoderErr  error
	zstdDecoderOnce sync.Once
	zstdDecoder     *zstd.Decoder
	zstdDecoderErr  error
)

func getZstdEncoder() (*zstd.Encoder, error) {
	zstdEncoderOnce.Do(func() {
		zstdEncoder, zstdEncoderErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	})
	return zstdEncoder, zstdEncoderErr
}

func getZstdDecoder() (*zstd.Decoder, error) {
	zstdDecoderOnce.Do(func() {
		zstdDecoder, zstdDecoderErr = zstd.NewReader(nil)
	})
	return zstdDecoder, zstdDecoderErr
}

// NewZstdCompressor returns the default Compressor: zstd at the library's
// default speed/ratio tradeoff.
func NewZstdCompressor() Compressor { return zstdCompressor{} }

func (zstdCompressor) Compress(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	return enc.EncodeAll(data, nil), nil
}

func (zstdCompressor) Decompress(data []byte, originalSize int) ([]byte, error) {
	dec, err := getZstdDecoder()
	if err != nil {
		return nil, err
	}
	out, err := dec.DecodeAll(data, make([]byte, 0, originalSize))
	if err != nil {
		return nil, err
	}
	return out, nil
}
