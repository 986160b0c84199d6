package hexcodec_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/idelchi/seed2key/internal/hexcodec"
)

func TestDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"00",
		"0a0B0c",
		"000102030405060708090a0b0c0d0e0f",
		"FFEEDDCCBBAA99887766554433221100",
		"DeadBeef",
	}

	for _, text := range cases {
		t.Run(text, func(t *testing.T) {
			t.Parallel()

			data, err := hexcodec.Decode(text)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", text, err)
			}

			if len(data) != len(text)/2 {
				t.Fatalf("Decode(%q) returned %d bytes, want %d", text, len(data), len(text)/2)
			}

			if got, want := hexcodec.Encode(data), strings.ToLower(text); got != want {
				t.Errorf("Encode(Decode(%q)) = %q, want %q", text, got, want)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	got, err := hexcodec.Decode(hexcodec.Encode(data))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	if !bytes.Equal(got, data) {
		t.Errorf("Decode(Encode(b)) != b")
	}
}

func TestDecodeInvalidEncoding(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
	}{
		{name: "odd length", text: "abc"},
		{name: "odd 31", text: strings.Repeat("a", 31)},
		{name: "non-hex letter", text: "zz"},
		{name: "non-hex in key", text: "000102030405060708090a0b0c0dzz0f"},
		{name: "prefix", text: "0x0102"},
		{name: "whitespace", text: "01 02 "},
		{name: "multibyte", text: "é0"},
		{name: "sign", text: "-1"},
		{name: "trailing newline", text: "0102\n0"},
		{name: "upper non-hex", text: "0G"},
		{name: "single char", text: "f"},
		{name: "colon separated", text: "01:2"},
		{name: "unicode full-width", text: "０１"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := hexcodec.Decode(tc.text)
			if !errors.Is(err, hexcodec.ErrInvalidEncoding) {
				t.Fatalf("Decode(%q) error = %v, want ErrInvalidEncoding", tc.text, err)
			}
		})
	}
}

func TestDecodeFixed(t *testing.T) {
	t.Parallel()

	const size = 16

	tests := []struct {
		name string
		text string
		want error
	}{
		{name: "exact", text: strings.Repeat("ab", size)},
		{name: "15 bytes", text: strings.Repeat("ab", size-1), want: hexcodec.ErrInvalidLength},
		{name: "17 bytes", text: strings.Repeat("ab", size+1), want: hexcodec.ErrInvalidLength},
		{name: "empty", text: "", want: hexcodec.ErrInvalidLength},
		{name: "odd before length", text: strings.Repeat("a", 31), want: hexcodec.ErrInvalidEncoding},
		{name: "non-hex before length", text: "zz", want: hexcodec.ErrInvalidEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := hexcodec.DecodeFixed(tt.text, size)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("DecodeFixed error: %v", err)
				}

				if len(got) != size {
					t.Fatalf("DecodeFixed returned %d bytes, want %d", len(got), size)
				}

				return
			}

			if !errors.Is(err, tt.want) {
				t.Fatalf("DecodeFixed(%q) error = %v, want %v", tt.text, err, tt.want)
			}
		})
	}
}

func TestDecodeErrorsDoNotEchoInput(t *testing.T) {
	t.Parallel()

	secret := "000102030405060708090a0b0c0dQQ0f"

	_, err := hexcodec.Decode(secret)
	if err == nil {
		t.Fatal("expected error")
	}

	for _, fragment := range []string{"QQ", "Q", "0a0b0c"} {
		if strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q leaks input fragment %q", err, fragment)
		}
	}
}
