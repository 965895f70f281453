package imgutil

import (
	"bytes"
	"encoding/base64"
	"testing"
)

var jpegMagic = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

func TestDecodeBase64MaybeDataURL(t *testing.T) {
	plain := base64.StdEncoding.EncodeToString(jpegMagic)

	tests := []struct {
		name     string
		in       string
		wantMIME string
		wantErr  bool
	}{
		{
			name: "plain base64",
			in:   plain,
		},
		{
			name:     "data url with mime",
			in:       "data:image/png;base64," + plain,
			wantMIME: "image/png",
		},
		{
			name:     "data url without encoding marker",
			in:       "data:image/webp," + plain,
			wantMIME: "image/webp",
		},
		{
			name: "surrounding whitespace",
			in:   "  " + plain + "\n",
		},
		{
			name:    "not base64",
			in:      "definitely not base64!!!",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, mime, err := DecodeBase64MaybeDataURL(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeBase64MaybeDataURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !bytes.Equal(data, jpegMagic) {
				t.Errorf("decoded bytes mismatch: got %v", data)
			}
			if mime != tt.wantMIME {
				t.Errorf("hint mime = %q, want %q", mime, tt.wantMIME)
			}
		})
	}
}

func TestPickMIME(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0}

	tests := []struct {
		name     string
		explicit string
		hint     string
		data     []byte
		want     string
	}{
		{name: "explicit wins", explicit: "image/webp", hint: "image/png", data: png, want: "image/webp"},
		{name: "hint when no explicit", hint: "image/png", data: jpegMagic, want: "image/png"},
		{name: "sniffed png", data: png, want: "image/png"},
		{name: "default jpeg", want: "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PickMIME(tt.explicit, tt.hint, tt.data); got != tt.want {
				t.Errorf("PickMIME() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSniffMIME(t *testing.T) {
	if got := SniffMIME(jpegMagic); got != "image/jpeg" {
		t.Errorf("jpeg sniff = %q", got)
	}
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	if got := SniffMIME(png); got != "image/png" {
		t.Errorf("png sniff = %q", got)
	}
	if got := SniffMIME([]byte("plain text")); got != "image/jpeg" {
		t.Errorf("fallback sniff = %q", got)
	}
}
