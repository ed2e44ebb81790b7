package ihex

type encodeConfig struct {
	recordLength int
}

type EncodeOption func(*encodeConfig)

// WithRecordLength sets the number of payload bytes per data record.
// Encode rejects values outside 1..MaxRecordLength with ErrInvalidConfig.
func WithRecordLength(n int) EncodeOption {
	return func(c *encodeConfig) { c.recordLength = n }
}
