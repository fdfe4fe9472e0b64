package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestDataURL_RoundTrip(t *testing.T) {
	data := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xff}

	url := EncodeDataURL("application/pdf", data)
	if url != "data:application/pdf;base64,JVBERgD/" {
		t.Fatalf("EncodeDataURL = %q", url)
	}

	mimeType, got, err := DecodeDataURL(url)
	if err != nil {
		t.Fatalf("DecodeDataURL error: %v", err)
	}
	if mimeType != "application/pdf" {
		t.Fatalf("mime = %q, want application/pdf", mimeType)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("data mismatch: %v", got)
	}
}

func TestEncodeDataURL_DefaultMIME(t *testing.T) {
	mimeType, _, err := DecodeDataURL(EncodeDataURL("", []byte("x")))
	if err != nil {
		t.Fatalf("DecodeDataURL error: %v", err)
	}
	if mimeType != DefaultMIMEType {
		t.Fatalf("mime = %q, want %q", mimeType, DefaultMIMEType)
	}
}

func TestDecodeDataURL_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"data:text/plain,hello",
		"data:text/plain;base64,***",
	}

	for _, in := range inputs {
		if _, _, err := DecodeDataURL(in); !errors.Is(err, ErrInvalidDataURL) {
			t.Fatalf("DecodeDataURL(%q) err = %v, want ErrInvalidDataURL", in, err)
		}
	}
}
