package ihex

import (
	"fmt"
	"io"
)

// checksum returns the checksum byte for a record body (every field except
// the leading colon and the checksum itself): the two's-complement of the
// 8-bit sum of the body bytes. A whole record body plus its checksum sums to
// zero modulo 256.
func checksum(body []byte) byte {
	var sum byte
	for _, b := range body {
		sum += b
	}
	return -sum
}

// writeRecord emits a single record line to w: colon, byte count, 16-bit
// address, record type, data, checksum, newline. Every numeric field is
// uppercase hex, zero-padded to its fixed width.
func writeRecord(w io.Writer, typ RecordType, addr uint16, data []byte) error {
	body := make([]byte, 0, 4+len(data))
	body = append(body, byte(len(data)), byte(addr>>8), byte(addr), byte(typ))
	body = append(body, data...)
	_, err := fmt.Fprintf(w, ":%X%02X\n", body, checksum(body))
	return err
}
