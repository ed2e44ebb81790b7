package ihex

import (
	"fmt"
	"io"
	"strings"
)

// Encode writes data to w as Intel HEX text.
//
// The output is, in order:
//  1. A preamble extended-address record setting the upper address bits to 0
//  2. One data record per chunk of RecordLength bytes (the last chunk may be
//     shorter), each at the current 16-bit load offset
//  3. An extended-address record with an incremented segment value each time
//     the load offset wraps past 0xFFFF
//  4. An end-of-file record
//
// Every line, the EOF record included, ends with a newline.
//
// Encode returns ErrInvalidInput if data is empty and ErrInvalidConfig if the
// configured record length is outside 1..MaxRecordLength; nothing is written
// in either case. Encode holds no state across calls and is safe for
// concurrent use with independent writers.
func Encode(w io.Writer, data []byte, opts ...EncodeOption) error {
	cfg := encodeConfig{recordLength: DefaultRecordLength}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.recordLength < 1 || cfg.recordLength > MaxRecordLength {
		return fmt.Errorf("%w: record length %d outside 1..%d", ErrInvalidConfig, cfg.recordLength, MaxRecordLength)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: empty payload", ErrInvalidInput)
	}
	enc := encoder{w: w, recordLength: cfg.recordLength}
	return enc.run(data)
}

// EncodeString validates hexDigits (two case-insensitive hex digits per
// payload byte) and returns the assembled Intel HEX text.
//
// Empty input, odd-length input, and any non-hex character fail with
// ErrInvalidInput before any record is produced.
func EncodeString(hexDigits string, opts ...EncodeOption) (string, error) {
	data, err := parseHexDigits(hexDigits)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := Encode(&sb, data, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// EncodeFragments concatenates the hex-digit fragments in order and encodes
// the combined string as EncodeString does. The evenness and hex-digit
// checks apply to the joined string, not to each fragment.
func EncodeFragments(fragments []string, opts ...EncodeOption) (string, error) {
	return EncodeString(strings.Join(fragments, ""), opts...)
}

// encoder carries the rolling output address for one Encode call: a 16-bit
// load offset plus the segment count announced by extended-address records.
type encoder struct {
	w            io.Writer
	recordLength int
	addrMajor    uint32
	addrMinor    uint32
}

func (e *encoder) run(data []byte) error {
	// Preamble pins the initial extended address to zero so the first data
	// record loads at the bottom of the address space.
	if err := e.writeExtendedAddress(); err != nil {
		return err
	}
	for idx := 0; idx < len(data); idx += e.recordLength {
		end := idx + e.recordLength
		if end > len(data) {
			end = len(data)
		}
		if err := writeRecord(e.w, RecordData, uint16(e.addrMinor), data[idx:end]); err != nil {
			return err
		}
		// The offset advances by a full record length even for a short
		// final chunk.
		e.addrMinor += uint32(e.recordLength)
		if e.addrMinor >= 0x10000 {
			e.addrMinor -= 0x10000
			e.addrMajor++
			if err := e.writeExtendedAddress(); err != nil {
				return err
			}
		}
	}
	return writeRecord(e.w, RecordEOF, 0, nil)
}

func (e *encoder) writeExtendedAddress() error {
	seg := []byte{byte(e.addrMajor >> 8), byte(e.addrMajor)}
	return writeRecord(e.w, RecordExtendedAddress, 0, seg)
}
