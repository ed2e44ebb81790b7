// Package ihex encodes binary payloads into the Intel HEX text format.
//
// Intel HEX is a line-oriented, checksummed ASCII format used to load binary
// images onto EPROM/flash programmers and similar tooling. Each line is one
// record:
//
//	:LLAAAATT[DD...]CC
//
// where LL is the data byte count, AAAA the 16-bit load offset, TT the record
// type, DD the data bytes, and CC a checksum chosen so that every byte of the
// record sums to zero modulo 256.
//
// # Output Structure
//
// The encoder emits:
//   - A preamble extended-address record (type 04) setting the upper 16
//     address bits to zero
//   - One data record (type 00) per chunk of the payload, RecordLength bytes
//     each, with a fresh extended-address record whenever the 16-bit load
//     offset wraps around
//   - A terminating end-of-file record (type 01)
//
// # Basic Usage
//
// To encode a payload supplied as a hex-digit string:
//
//	text, err := ihex.EncodeString("00112233", ihex.WithRecordLength(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(text)
//	// :020000040000FA
//	// :020000000011ED
//	// :020002002233A7
//	// :00000001FF
//
// Raw bytes can be written directly to an io.Writer with [Encode].
//
// # Archives
//
// Intel HEX text represents every payload byte as two ASCII characters plus
// per-record framing, so images are well over twice the size of the binary
// they carry. [Compress] and [Decompress] wrap the emitted text in a small
// compressed envelope (ZIP, Zstandard, LZ4, or Brotli) for storage and
// transport. Decompression enforces a size limit to prevent decompression
// bombs.
package ihex
