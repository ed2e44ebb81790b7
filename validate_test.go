package ihex

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseHexDigits(t *testing.T) {
	tests := []struct {
		name      string
		hexDigits string
		want      []byte
		wantErr   bool
	}{
		{name: "uppercase", hexDigits: "DEADBEEF", want: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{name: "lowercase", hexDigits: "deadbeef", want: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{name: "mixed case", hexDigits: "DeAdBeEf", want: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{name: "zero byte", hexDigits: "00", want: []byte{0x00}},
		{name: "empty", hexDigits: "", wantErr: true},
		{name: "odd length", hexDigits: "ABC", wantErr: true},
		{name: "digit above f", hexDigits: "0g", wantErr: true},
		{name: "unicode digit", hexDigits: "0é", wantErr: true},
		{name: "trailing newline", hexDigits: "0011\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHexDigits(tt.hexDigits)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHexDigits: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("decoded % X, want % X", got, tt.want)
			}
		})
	}
}

func TestIsHexDigit(t *testing.T) {
	for _, c := range []byte("0123456789abcdefABCDEF") {
		if !isHexDigit(c) {
			t.Fatalf("%q rejected", c)
		}
	}
	for _, c := range []byte{'g', 'G', '/', ':', '@', '`', ' ', 0x00, 0xFF} {
		if isHexDigit(c) {
			t.Fatalf("%q accepted", c)
		}
	}
}
