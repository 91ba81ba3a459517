package export

import (
	"fmt"

	"github.com/mon-refugee/membership-api/internal/models"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Submissions"

var header = []interface{}{
	"ID", "Reference", "Full Name", "Email", "Phone",
	"Date of Birth", "Arrival", "Country", "Ethnicity", "Religion",
}

// Workbook builds an xlsx workbook with one row per submission,
// covering the admin-facing column subset.
func Workbook(rows []models.Submission) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("create worksheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	for i, sub := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("address row %d: %w", i+2, err)
		}
		row := []interface{}{
			sub.ID, sub.Reference, sub.FullName, sub.Email, sub.Phone,
			sub.DOB, sub.Arrival, sub.Country, sub.Ethnicity, sub.Religion,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
