package delivery

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mon-refugee/membership-api/internal/mailer"
)

// Identity is a document's storage and retrieval identity, allocated
// before the document exists. The QR code embedded in the document
// encodes URL, so the identity has to be fixed up front.
type Identity struct {
	PDFName string
	QRName  string
	PDFPath string
	QRPath  string
	URL     string
}

// Dispatcher stores rendered artifacts and emails them to the
// applicant.
type Dispatcher struct {
	PDFDir  string
	QRDir   string
	BaseURL string
	Mailer  mailer.Mailer
}

// AllocateIdentity derives a fresh document identity from the current
// time and the submission reference. Regenerating the same submission
// yields a new identity; documents are never overwritten.
func (d *Dispatcher) AllocateIdentity(reference string) Identity {
	stamp := time.Now().UnixMilli()
	pdfName := fmt.Sprintf("%d-%s.pdf", stamp, reference)
	qrName := fmt.Sprintf("%d-%s-qr.png", stamp, reference)
	return Identity{
		PDFName: pdfName,
		QRName:  qrName,
		PDFPath: filepath.Join(d.PDFDir, pdfName),
		QRPath:  filepath.Join(d.QRDir, qrName),
		URL:     d.BaseURL + "/pdfs/" + pdfName,
	}
}

// Dispatch writes the document and QR image to their store locations,
// emails both to the applicant, and hands the document bytes back for
// the HTTP response. Every step must succeed; a failure here leaves the
// already-committed submission row without a delivered document.
func (d *Dispatcher) Dispatch(id Identity, pdfBytes, qrBytes []byte, email string) ([]byte, error) {
	if err := os.WriteFile(id.PDFPath, pdfBytes, 0o644); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}
	if err := os.WriteFile(id.QRPath, qrBytes, 0o644); err != nil {
		return nil, fmt.Errorf("store qr image: %w", err)
	}

	attachments := []mailer.Attachment{
		{Filename: id.PDFName, Data: pdfBytes},
		{Filename: id.QRName, Data: qrBytes},
	}
	if err := d.Mailer.SendDocument(email, id.URL, attachments); err != nil {
		return nil, fmt.Errorf("deliver document: %w", err)
	}

	return pdfBytes, nil
}
