package ihex

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// DefaultMaxDecompressed caps Decompress output when the caller passes a
// zero limit.
const DefaultMaxDecompressed uint64 = 1 << 30 // 1 GiB

// zipEntryName is the single entry inside a ZIP archive envelope.
const zipEntryName = "image.hex"

// Function variables for testing injection.
var (
	newZstdWriter = func() (*zstd.Encoder, error) { return zstd.NewWriter(nil) }
	newZstdReader = func() (*zstd.Decoder, error) { return zstd.NewReader(nil) }
	zipCreate     = func(zw *zip.Writer, name string) (io.Writer, error) { return zw.Create(name) }
	zipClose      = func(zw *zip.Writer) error { return zw.Close() }
	zipOpen       = func(zf *zip.File) (io.ReadCloser, error) { return zf.Open() }
	readAll       = io.ReadAll
	lz4Close      = func(w *lz4.Writer) error { return w.Close() }
	brotliClose   = func(w *brotli.Writer) error { return w.Close() }
	brotliWrite   = func(w *brotli.Writer, p []byte) (int, error) { return w.Write(p) }
)

// Compress wraps Intel HEX text in a compressed archive envelope.
//
// For CompNone the text is returned unchanged. For every other algorithm the
// result is an 8-byte little-endian uncompressed length followed by the
// compressed bytes; Decompress requires that prefix.
func Compress(comp Compression, text []byte) ([]byte, error) {
	if comp == CompNone {
		return text, nil
	}
	var compressed []byte
	var err error
	switch comp {
	case CompZIP:
		compressed, err = zipCompress(text)
	case CompZSTD:
		compressed, err = zstdCompress(text)
	case CompLZ4:
		compressed, err = lz4Compress(text)
	case CompBR:
		compressed, err = brotliCompress(text)
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidConfig, comp)
	}
	if err != nil {
		return nil, err
	}
	var prefix [8]byte
	binary.LittleEndian.PutUint64(prefix[:], uint64(len(text)))
	return append(prefix[:], compressed...), nil
}

// Decompress unwraps an archive envelope produced by Compress and returns
// the Intel HEX text. maxUncompressed bounds the declared output size to
// prevent decompression bombs; zero selects DefaultMaxDecompressed.
func Decompress(comp Compression, payload []byte, maxUncompressed uint64) ([]byte, error) {
	if maxUncompressed == 0 {
		maxUncompressed = DefaultMaxDecompressed
	}
	if comp == CompNone {
		if uint64(len(payload)) > maxUncompressed {
			return nil, fmt.Errorf("%w: payload length %d exceeds limit", ErrLimitExceeded, len(payload))
		}
		return payload, nil
	}
	if len(payload) < 8 {
		return nil, fmt.Errorf("%w: payload too short for uncompressed length", ErrInvalidPayload)
	}
	uncompressedLen := binary.LittleEndian.Uint64(payload[:8])
	if uncompressedLen > maxUncompressed {
		return nil, fmt.Errorf("%w: uncompressed length %d exceeds limit", ErrLimitExceeded, uncompressedLen)
	}
	compressedBytes := payload[8:]

	var out []byte
	var err error
	switch comp {
	case CompZIP:
		out, err = zipDecompress(compressedBytes, uncompressedLen)
	case CompZSTD:
		out, err = zstdDecompress(compressedBytes, uncompressedLen)
	case CompLZ4:
		out, err = lz4Decompress(compressedBytes, uncompressedLen)
	case CompBR:
		out, err = brotliDecompress(compressedBytes, uncompressedLen)
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidConfig, comp)
	}
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) != uncompressedLen {
		return nil, fmt.Errorf("%w: decompressed length %d != expected %d", ErrInvalidPayload, len(out), uncompressedLen)
	}
	return out, nil
}

// zipCompress creates a ZIP archive containing in as "image.hex".
func zipCompress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := zipCompressNamed(&buf, zipEntryName, in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// zipCompressNamed creates a ZIP archive with a single entry.
func zipCompressNamed(w io.Writer, name string, in []byte) error {
	zw := zip.NewWriter(w)
	entry, err := zipCreate(zw, name)
	if err != nil {
		_ = zipClose(zw)
		return err
	}
	if _, err := entry.Write(in); err != nil {
		_ = zipClose(zw)
		return err
	}
	return zipClose(zw)
}

// zipDecompress extracts the "image.hex" entry from a ZIP archive. The
// archive must contain exactly that one entry with the expected uncompressed
// size.
func zipDecompress(zipBytes []byte, expected uint64) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, err
	}
	if len(zr.File) != 1 {
		return nil, fmt.Errorf("%w: zip must contain exactly one entry", ErrInvalidPayload)
	}
	zf := zr.File[0]
	if zf.Name != zipEntryName {
		return nil, fmt.Errorf("%w: zip entry name must be %s", ErrInvalidPayload, zipEntryName)
	}
	if zf.FileInfo().IsDir() {
		return nil, fmt.Errorf("%w: zip entry must be a file", ErrInvalidPayload)
	}
	if zf.UncompressedSize64 != expected {
		return nil, fmt.Errorf("%w: zip uncompressed size %d != expected %d", ErrInvalidPayload, zf.UncompressedSize64, expected)
	}
	rc, err := zipOpen(zf)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	b, err := readAll(io.LimitReader(rc, int64(expected)))
	if err != nil {
		return nil, err
	}
	return b, nil
}

// zstdCompress compresses in using the Zstandard algorithm.
func zstdCompress(in []byte) ([]byte, error) {
	enc, err := newZstdWriter()
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(in, nil), nil
}

// zstdDecompress decompresses Zstandard-compressed data.
// It rejects output that exceeds expected bytes.
func zstdDecompress(in []byte, expected uint64) ([]byte, error) {
	dec, err := newZstdReader()
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	out, err := dec.DecodeAll(in, nil)
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) > expected {
		return nil, fmt.Errorf("%w: zstd expanded beyond expected size", ErrInvalidPayload)
	}
	return out, nil
}

// lz4Compress compresses in using the LZ4 algorithm.
func lz4Compress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := lz4CompressTo(&buf, in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lz4CompressTo writes LZ4-compressed data to w.
func lz4CompressTo(w io.Writer, in []byte) error {
	zw := lz4.NewWriter(w)
	if _, err := zw.Write(in); err != nil {
		_ = lz4Close(zw)
		return err
	}
	return lz4Close(zw)
}

// lz4Decompress decompresses LZ4-compressed data.
// It uses a LimitReader to prevent decompression beyond expected bytes.
func lz4Decompress(in []byte, expected uint64) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(in))
	b, err := io.ReadAll(io.LimitReader(r, int64(expected)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(b)) > expected {
		return nil, fmt.Errorf("%w: lz4 expanded beyond expected size", ErrInvalidPayload)
	}
	return b, nil
}

// brotliCompress compresses in using the Brotli algorithm.
func brotliCompress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := brotliCompressTo(&buf, in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// brotliCompressTo writes Brotli-compressed data to w.
func brotliCompressTo(w io.Writer, in []byte) error {
	bw := brotli.NewWriter(w)
	if _, err := brotliWrite(bw, in); err != nil {
		_ = brotliClose(bw)
		return err
	}
	return brotliClose(bw)
}

// brotliDecompress decompresses Brotli-compressed data.
// It uses a LimitReader to prevent decompression beyond expected bytes.
func brotliDecompress(in []byte, expected uint64) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(in))
	b, err := readAll(io.LimitReader(r, int64(expected)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(b)) > expected {
		return nil, fmt.Errorf("%w: brotli expanded beyond expected size", ErrInvalidPayload)
	}
	return b, nil
}
