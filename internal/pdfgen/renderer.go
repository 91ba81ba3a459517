package pdfgen

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/mon-refugee/membership-api/internal/intake"
	"github.com/mon-refugee/membership-api/internal/models"
)

const (
	orgName   = "Mon Refugee Organization"
	docTitle  = "Membership Form"
	watermark = "CONFIDENTIAL"

	labelWidth = 76
	valueWidth = 114
	rowHeight  = 7
)

// Renderer draws the membership certificate. Logo is an optional PNG;
// when empty the logo block is skipped.
type Renderer struct {
	Logo []byte
}

// Render produces the A4 certificate for one submission. qrPNG is the
// pre-generated QR code pointing at the document's own retrieval URL,
// allocated before rendering. photoURL is empty when no photo was
// uploaded. Any drawing failure aborts the whole document.
func (r *Renderer) Render(sub *models.Submission, family []models.FamilyMember, qrPNG []byte, photoURL string) ([]byte, error) {
	generated := intake.Today()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(docTitle, false)
	pdf.SetAutoPageBreak(true, 25)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Watermark on every page.
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 60)
		pdf.SetTextColor(230, 230, 230)
		pdf.TransformBegin()
		pdf.TransformRotate(30, 105, 160)
		pdf.Text(40, 170, watermark)
		pdf.TransformEnd()
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(102, 102, 102)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("This PDF was generated on %s. All rights reserved.", generated),
			"", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()

	if len(r.Logo) > 0 {
		pdf.RegisterImageOptionsReader("logo", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(r.Logo))
		pdf.ImageOptions("logo", 85, pdf.GetY(), 40, 0, true, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 64, 128)
	pdf.CellFormat(0, 10, orgName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 15)
	pdf.SetTextColor(0, 102, 204)
	pdf.CellFormat(0, 8, docTitle, "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	field := func(label, value string) {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(224, 224, 224)
		pdf.CellFormat(labelWidth, rowHeight, tr(label), "1", 0, "L", true, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(249, 249, 249)
		pdf.CellFormat(valueWidth, rowHeight, tr(value), "1", 1, "L", true, 0, "")
	}

	field("REFERENCE NUMBER:", sub.Reference)
	registered := "No"
	if sub.UNHCRStatus == "Yes" {
		registered = "Yes"
	}
	field("REGISTERED WITH UNHCR:", registered)
	if sub.UNHCRStatus == "Yes" {
		field("UNHCR FILE NUMBER:", orNA(sub.UNHCRFileNumber))
		field("INDIVIDUAL NUMBER:", orNA(sub.IndividualNumber))
	}
	field("FULL NAME:", sub.FullName)
	field("FATHER NAME:", sub.FatherName)
	field("MOTHER NAME:", sub.MotherName)
	field("EMAIL:", sub.Email)
	field("PHONE:", sub.Phone)
	field("SECOND PHONE:", sub.Phone2)
	field("COUNTRY:", sub.Country)
	field("ETHNICITY:", sub.Ethnicity)
	field("RELIGION:", sub.Religion)
	field("GENDER:", sub.Gender)
	field("DATE OF BIRTH:", sub.DOB)
	field("DATE OF ARRIVAL:", sub.Arrival)
	field("ADDRESS (STATE):", sub.AddressState)
	field("VULNERABILITY:", orNA(sub.Vulnerability))

	// Photo link row, clickable when a photo exists.
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(224, 224, 224)
	pdf.CellFormat(labelWidth, rowHeight, "PASSPORT PHOTO LINK:", "1", 0, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(249, 249, 249)
	if photoURL != "" {
		pdf.SetTextColor(0, 102, 204)
		pdf.CellFormat(valueWidth, rowHeight, "View Passport Photo", "1", 1, "L", true, 0, photoURL)
		pdf.SetTextColor(0, 0, 0)
	} else {
		pdf.CellFormat(valueWidth, rowHeight, "No Photo Uploaded", "1", 1, "L", true, 0, "")
	}

	if len(family) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 8, "Additional Family Members", "", 1, "L", false, 0, "")
		for i, fam := range family {
			pdf.Ln(2)
			pdf.SetFont("Arial", "B", 11)
			pdf.CellFormat(0, 7, fmt.Sprintf("Family Member #%d", i+1), "", 1, "L", false, 0, "")
			field("FULL NAME:", fam.FullName)
			field("FATHER NAME:", fam.FatherName)
			field("MOTHER NAME:", fam.MotherName)
			field("EMAIL:", fam.Email)
			field("PHONE:", fam.Phone)
			field("SECOND PHONE:", fam.Phone2)
			field("COUNTRY:", fam.Country)
			field("ETHNICITY:", fam.Ethnicity)
			field("RELIGION:", fam.Religion)
			field("GENDER:", fam.Gender)
			field("DATE OF BIRTH:", fam.DOB)
			field("DATE OF ARRIVAL:", fam.Arrival)
			field("ADDRESS (STATE):", fam.AddressState)
			field("VULNERABILITY:", fam.Vulnerability)
		}
	}

	pdf.Ln(6)
	field("DATE GENERATED:", generated)

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, "Scan to view your PDF:", "", 1, "C", false, 0, "")
	pdf.RegisterImageOptionsReader("qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 90, pdf.GetY()+2, 30, 30, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return buf.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
