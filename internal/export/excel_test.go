package export

import (
	"bytes"
	"testing"

	"github.com/mon-refugee/membership-api/internal/models"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func TestWorkbook(t *testing.T) {
	rows := []models.Submission{
		{Model: gorm.Model{ID: 1}, Reference: "R1", FullName: "Jane Doe", Email: "jane@x.com", DOB: "01/01/1990"},
		{Model: gorm.Model{ID: 2}, Reference: "R2", FullName: "John Roe", Email: "john@x.com"},
	}

	out, err := Workbook(rows)
	if err != nil {
		t.Fatalf("Workbook returned error: %v", err)
	}
	// xlsx is a zip container.
	if !bytes.HasPrefix(out, []byte("PK")) {
		t.Fatalf("output is not a zip archive: % x", out[:4])
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Submissions", "C2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "Jane Doe" {
		t.Errorf("C2 = %q, want Jane Doe", got)
	}

	sheetRows, err := f.GetRows("Submissions")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(sheetRows) != 3 {
		t.Errorf("expected header + 2 rows, got %d", len(sheetRows))
	}
}

func TestWorkbookEmpty(t *testing.T) {
	out, err := Workbook(nil)
	if err != nil {
		t.Fatalf("Workbook returned error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("PK")) {
		t.Error("empty workbook still must be a valid archive")
	}
}
