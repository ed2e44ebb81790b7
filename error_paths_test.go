package ihex

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }

type errAfterWriter struct {
	remaining int
}

func (w *errAfterWriter) Write(p []byte) (int, error) {
	if w.remaining <= 0 {
		return 0, io.ErrClosedPipe
	}
	if len(p) > w.remaining {
		return 0, io.ErrClosedPipe
	}
	w.remaining -= len(p)
	return len(p), nil
}

func TestEncodeString_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		hexDigits string
	}{
		{name: "empty", hexDigits: ""},
		{name: "non-hex character", hexDigits: "12G4"},
		{name: "odd length", hexDigits: "123"},
		{name: "embedded space", hexDigits: "00 1122"},
		{name: "record prefix", hexDigits: ":00112233"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := EncodeString(tt.hexDigits)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if out != "" {
				t.Fatalf("expected no output, got %q", out)
			}
		})
	}
}

func TestEncode_EmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no partial output, got %q", buf.String())
	}
}

func TestEncode_RecordLengthOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0, MaxRecordLength + 1} {
		var buf bytes.Buffer
		err := Encode(&buf, testPayload(8), WithRecordLength(n))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("record length %d: expected ErrInvalidConfig, got %v", n, err)
		}
		if buf.Len() != 0 {
			t.Fatalf("record length %d: expected no partial output", n)
		}
	}
}

func TestEncode_WriterError(t *testing.T) {
	if err := Encode(errWriter{}, testPayload(8)); err == nil {
		t.Fatal("expected error")
	}
	// Fail partway through, after the preamble fits.
	w := &errAfterWriter{remaining: len(":020000040000FA\n")}
	if err := Encode(w, testPayload(64)); err == nil {
		t.Fatal("expected error")
	}
}
