package ihex

// RecordType identifies an Intel HEX record kind (the TT field).
type RecordType byte

const (
	// RecordData carries payload bytes at the current load offset.
	RecordData RecordType = 0x00
	// RecordEOF terminates the image.
	RecordEOF RecordType = 0x01
	// RecordExtendedAddress supplies the upper 16 bits of the load address
	// for all data records that follow.
	RecordExtendedAddress RecordType = 0x04
)

const (
	// DefaultRecordLength is the number of payload bytes per data record
	// when no option overrides it.
	DefaultRecordLength = 16

	// MaxRecordLength is the largest record length whose byte count still
	// fits the one-byte LL field.
	MaxRecordLength = 0xFF
)

// Compression selects the archive envelope algorithm for Compress and
// Decompress.
type Compression uint16

const (
	CompNone Compression = 0x0
	CompZIP  Compression = 0x1
	CompZSTD Compression = 0x2
	CompLZ4  Compression = 0x3
	CompBR   Compression = 0x4
)
