package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/orizenati71-dev/media-agents/internal/config"
	"github.com/orizenati71-dev/media-agents/internal/models"
	"github.com/orizenati71-dev/media-agents/pkg/logger"
)

// SheetColumns defines the column headers for the packages tracking sheet.
// One row per generated platform package.
var SheetColumns = []string{
	"ID",
	"Package ID",
	"Draft ID",
	"Topic",
	"Platform",
	"Tone",
	"Caption Preview",
	"Hashtags",
	"Corrections",
	"Status",
	"Created At",
}

// EntryStatus represents the status of a tracked package row
type EntryStatus string

const (
	StatusGenerated EntryStatus = "Generated"
	StatusExported  EntryStatus = "Exported"
)

// SheetsTracker writes generated publishing packages to a Google Sheet so
// the content team can review and schedule them manually.
type SheetsTracker struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
	initialized   bool
	log           *logger.Logger
}

// NewSheetsTracker creates a new Google Sheets tracker. Returns (nil, nil)
// when the tracker is disabled in config.
func NewSheetsTracker(cfg config.TrackerConfig, log *logger.Logger) (*SheetsTracker, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	ctx := context.Background()

	var srv *sheets.Service
	var err error

	// Try service account JSON first (for env var injection)
	if cfg.ServiceAccountJSON != "" {
		srv, err = sheets.NewService(ctx, option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)))
	} else if cfg.CredentialsFile != "" {
		srv, err = sheets.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	} else {
		return nil, fmt.Errorf("no Google credentials provided: set credentials_file or service_account_json")
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	sheetName := cfg.SheetName
	if sheetName == "" {
		sheetName = "Packages"
	}

	return &SheetsTracker{
		service:       srv,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     sheetName,
		log:           log.WithComponent("sheets-tracker"),
	}, nil
}

// InitializeSheet creates the sheet and headers if they don't exist
func (t *SheetsTracker) InitializeSheet(ctx context.Context) error {
	if err := t.ensureSheetExists(ctx); err != nil {
		return err
	}

	readRange := fmt.Sprintf("%s!A1:K1", t.sheetName)
	resp, err := t.service.Spreadsheets.Values.Get(t.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read sheet: %w", err)
	}

	if len(resp.Values) == 0 {
		t.log.Info().Msg("Initializing sheet with headers")
		return t.writeHeaders(ctx)
	}

	t.log.Debug().Msg("Sheet already has headers")
	return nil
}

// ensureInitialized bootstraps the sheet on first use so tracking works
// against a fresh spreadsheet without a manual init step
func (t *SheetsTracker) ensureInitialized(ctx context.Context) error {
	if t.initialized {
		return nil
	}
	if err := t.InitializeSheet(ctx); err != nil {
		return err
	}
	t.initialized = true
	return nil
}

// ensureSheetExists creates the sheet if it doesn't exist
func (t *SheetsTracker) ensureSheetExists(ctx context.Context) error {
	spreadsheet, err := t.service.Spreadsheets.Get(t.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == t.sheetName {
			t.log.Debug().Str("sheet", t.sheetName).Msg("Sheet already exists")
			return nil
		}
	}

	t.log.Info().Str("sheet", t.sheetName).Msg("Creating new sheet")
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: t.sheetName,
					},
				},
			},
		},
	}

	_, err = t.service.Spreadsheets.BatchUpdate(t.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	return nil
}

// writeHeaders writes column headers to the first row
func (t *SheetsTracker) writeHeaders(ctx context.Context) error {
	var headerRow []interface{}
	for _, col := range SheetColumns {
		headerRow = append(headerRow, col)
	}

	writeRange := fmt.Sprintf("%s!A1", t.sheetName)
	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{headerRow},
	}

	_, err := t.service.Spreadsheets.Values.Update(t.spreadsheetID, writeRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	t.log.Info().Msg("Sheet headers initialized")
	return nil
}

// TrackPackage appends one row per platform package in the publishing package
func (t *SheetsTracker) TrackPackage(ctx context.Context, record *models.PackageRecord, pkg *models.PublishingPackage) error {
	if err := t.ensureInitialized(ctx); err != nil {
		return err
	}

	nextRow, err := t.getNextRow(ctx)
	if err != nil {
		return err
	}

	now := time.Now().Format(time.RFC3339)
	draftID := ""
	if record.DraftID != nil {
		draftID = fmt.Sprintf("%d", *record.DraftID)
	}

	rows := make([][]interface{}, 0, len(pkg.Platforms))

	for i, pp := range pkg.Platforms {
		// Rune slicing: Hebrew captions must not be cut mid-character
		preview := pp.CaptionA
		if runes := []rune(preview); len(runes) > 200 {
			preview = string(runes[:200]) + "..."
		}

		rows = append(rows, []interface{}{
			nextRow - 1 + i,
			record.ID,
			draftID,
			record.VideoTopic,
			string(pp.Platform),
			string(record.Tone),
			preview,
			strings.Join(pp.Hashtags, " "),
			len(pkg.QAResult.Corrections),
			string(StatusGenerated),
			now,
		})
	}

	if len(rows) == 0 {
		return nil
	}

	appendRange := fmt.Sprintf("%s!A:K", t.sheetName)
	valueRange := &sheets.ValueRange{
		Values: rows,
	}

	_, err = t.service.Spreadsheets.Values.Append(t.spreadsheetID, appendRange, valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append rows: %w", err)
	}

	t.log.Info().
		Uint("package_id", record.ID).
		Int("rows", len(rows)).
		Msg("Tracked publishing package")

	return nil
}

// MarkExported updates the status column for all rows of a package
func (t *SheetsTracker) MarkExported(ctx context.Context, packageID uint) error {
	if err := t.ensureInitialized(ctx); err != nil {
		return err
	}

	rowNums, err := t.findRowsByPackageID(ctx, packageID)
	if err != nil {
		return err
	}

	for _, rowNum := range rowNums {
		cellRange := fmt.Sprintf("%s!J%d", t.sheetName, rowNum)
		valueRange := &sheets.ValueRange{
			Values: [][]interface{}{{string(StatusExported)}},
		}

		_, err := t.service.Spreadsheets.Values.Update(t.spreadsheetID, cellRange, valueRange).
			ValueInputOption("RAW").
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("failed to update cell %s: %w", cellRange, err)
		}
	}

	return nil
}

// getNextRow returns the next empty row number
func (t *SheetsTracker) getNextRow(ctx context.Context) (int, error) {
	readRange := fmt.Sprintf("%s!A:A", t.sheetName)
	resp, err := t.service.Spreadsheets.Values.Get(t.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to get row count: %w", err)
	}
	return len(resp.Values) + 1, nil
}

// findRowsByPackageID finds all row numbers for a given package ID
func (t *SheetsTracker) findRowsByPackageID(ctx context.Context, packageID uint) ([]int, error) {
	readRange := fmt.Sprintf("%s!B:B", t.sheetName)
	resp, err := t.service.Spreadsheets.Values.Get(t.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search for package: %w", err)
	}

	packageIDStr := fmt.Sprintf("%d", packageID)
	var rows []int
	for i, row := range resp.Values {
		if len(row) > 0 && fmt.Sprintf("%v", row[0]) == packageIDStr {
			rows = append(rows, i+1) // 1-indexed
		}
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("package ID %d not found in tracker", packageID)
	}

	return rows, nil
}
