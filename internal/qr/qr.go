package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Generate encodes the document retrieval URL as a 256px PNG at the
// highest recovery level, so the code survives print degradation.
func Generate(url string) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Highest, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
