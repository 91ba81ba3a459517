package qr

import (
	"bytes"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateProducesPNG(t *testing.T) {
	png, err := Generate("http://localhost:3000/pdfs/123-R1.pdf")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Errorf("expected PNG magic bytes, got % x", png[:4])
	}
}
