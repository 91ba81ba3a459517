package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mon-refugee/membership-api/internal/config"
	"github.com/mon-refugee/membership-api/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const appendRange = "Submissions!A1"

var header = []interface{}{"ID", "Reference", "Full Name", "Email", "Phone", "DOB", "Arrival"}

// SheetsBackup appends submission rows to an external Google
// spreadsheet. Credentials come from an installed-app OAuth client file
// plus a pre-issued token held in configuration.
type SheetsBackup struct {
	cfg *config.Config
}

func NewSheetsBackup(cfg *config.Config) *SheetsBackup {
	return &SheetsBackup{cfg: cfg}
}

func (b *SheetsBackup) service(ctx context.Context) (*sheets.Service, error) {
	creds, err := os.ReadFile(b.cfg.GoogleCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read google credentials: %w", err)
	}
	oauthCfg, err := google.ConfigFromJSON(creds, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse google credentials: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(b.cfg.GoogleToken), &token); err != nil {
		return nil, fmt.Errorf("parse google token: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(oauthCfg.Client(ctx, &token)))
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return svc, nil
}

// Append pushes a header row plus one row per submission onto the
// configured spreadsheet and reports how many cells were written.
func (b *SheetsBackup) Append(ctx context.Context, rows []models.Submission) (int64, error) {
	svc, err := b.service(ctx)
	if err != nil {
		return 0, err
	}

	values := make([][]interface{}, 0, len(rows)+1)
	values = append(values, header)
	for _, sub := range rows {
		values = append(values, []interface{}{
			sub.ID, sub.Reference, sub.FullName, sub.Email, sub.Phone, sub.DOB, sub.Arrival,
		})
	}

	resp, err := svc.Spreadsheets.Values.
		Append(b.cfg.SpreadsheetID, appendRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("append to spreadsheet: %w", err)
	}
	if resp.Updates == nil {
		return 0, nil
	}
	return resp.Updates.UpdatedCells, nil
}
