package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/orizenati71-dev/media-agents/internal/models"
	"github.com/orizenati71-dev/media-agents/pkg/logger"
)

// fakeSheetsAPI emulates the small slice of the Sheets API the tracker uses:
// spreadsheet metadata, sheet creation, and value get/update/append.
type fakeSheetsAPI struct {
	mu            sync.Mutex
	hasSheet      bool
	rows          [][]interface{}
	sheetsCreated int
}

type valuePayload struct {
	Values [][]interface{} `json:"values"`
}

func (f *fakeSheetsAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		path := r.URL.Path
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodPost && strings.HasSuffix(path, ":batchUpdate"):
			f.hasSheet = true
			f.sheetsCreated++
			fmt.Fprint(w, "{}")

		case r.Method == http.MethodPost && strings.HasSuffix(path, ":append"):
			var payload valuePayload
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			f.rows = append(f.rows, payload.Values...)
			fmt.Fprint(w, "{}")

		case r.Method == http.MethodPut && strings.Contains(path, "/values/"):
			var payload valuePayload
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			f.applyUpdate(rangeOf(path), payload.Values)
			fmt.Fprint(w, "{}")

		case r.Method == http.MethodGet && strings.Contains(path, "/values/"):
			fmt.Fprint(w, f.valuesJSON(rangeOf(path)))

		case r.Method == http.MethodGet:
			// Spreadsheet metadata
			var titles []string
			if f.hasSheet {
				titles = append(titles, "Packages")
			}
			sheetsJSON := make([]string, 0, len(titles))
			for _, title := range titles {
				sheetsJSON = append(sheetsJSON, fmt.Sprintf(`{"properties":{"title":%q}}`, title))
			}
			fmt.Fprintf(w, `{"spreadsheetId":"test","sheets":[%s]}`, strings.Join(sheetsJSON, ","))

		default:
			http.Error(w, "unexpected request", http.StatusBadRequest)
		}
	})
}

// rangeOf extracts the A1-notation range from a values request path
func rangeOf(path string) string {
	idx := strings.LastIndex(path, "/values/")
	return path[idx+len("/values/"):]
}

func (f *fakeSheetsAPI) applyUpdate(rng string, values [][]interface{}) {
	switch {
	case strings.HasSuffix(rng, "!A1"):
		if len(f.rows) == 0 {
			f.rows = append(f.rows, nil)
		}
		f.rows[0] = values[0]
	case strings.Contains(rng, "!J"):
		rowNum, _ := strconv.Atoi(rng[strings.Index(rng, "!J")+2:])
		row := f.rows[rowNum-1]
		for len(row) < 10 {
			row = append(row, "")
		}
		row[9] = values[0][0]
		f.rows[rowNum-1] = row
	}
}

func (f *fakeSheetsAPI) valuesJSON(rng string) string {
	var values [][]interface{}
	switch {
	case strings.HasSuffix(rng, "!A1:K1"):
		if len(f.rows) > 0 {
			values = f.rows[:1]
		}
	case strings.HasSuffix(rng, "!A:A"):
		values = f.column(0)
	case strings.HasSuffix(rng, "!B:B"):
		values = f.column(1)
	}

	if len(values) == 0 {
		return fmt.Sprintf(`{"range":%q}`, rng)
	}
	raw, _ := json.Marshal(values)
	return fmt.Sprintf(`{"range":%q,"values":%s}`, rng, raw)
}

func (f *fakeSheetsAPI) column(i int) [][]interface{} {
	col := make([][]interface{}, 0, len(f.rows))
	for _, row := range f.rows {
		if len(row) > i {
			col = append(col, []interface{}{row[i]})
		} else {
			col = append(col, []interface{}{})
		}
	}
	return col
}

func newTestTracker(t *testing.T, api *fakeSheetsAPI) *SheetsTracker {
	t.Helper()

	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)

	srv, err := sheets.NewService(context.Background(),
		option.WithEndpoint(server.URL),
		option.WithoutAuthentication())
	require.NoError(t, err)

	return &SheetsTracker{
		service:       srv,
		spreadsheetID: "test",
		sheetName:     "Packages",
		log:           logger.New(logger.Config{Level: "error", Format: "console", Output: "stdout"}).WithComponent("sheets-tracker"),
	}
}

func testRecordAndPackage() (*models.PackageRecord, *models.PublishingPackage) {
	record := &models.PackageRecord{
		ID:         7,
		VideoTopic: "אימוני כושר בבית",
		Tone:       models.ToneCasual,
	}
	pkg := &models.PublishingPackage{
		QAResult: models.QAResult{Corrections: []string{"'ניתן ל' → 'אפשר ל'"}},
		Platforms: []models.PlatformPackage{
			{Platform: models.PlatformTikTok, CaptionA: "כיתוב קצר", Hashtags: []string{"#כושר"}},
			{Platform: models.PlatformInstagram, CaptionA: "כיתוב ארוך יותר", Hashtags: []string{"#אינסטגרם"}},
		},
	}
	return record, pkg
}

func TestTrackPackageBootstrapsFreshSpreadsheet(t *testing.T) {
	api := &fakeSheetsAPI{}
	tr := newTestTracker(t, api)

	record, pkg := testRecordAndPackage()
	require.NoError(t, tr.TrackPackage(context.Background(), record, pkg))

	// Sheet was created and headers written before the first append
	assert.True(t, api.hasSheet)
	require.Len(t, api.rows, 3)
	assert.Len(t, api.rows[0], len(SheetColumns))
	assert.Equal(t, "Package ID", api.rows[0][1])

	assert.Equal(t, "tiktok", api.rows[1][4])
	assert.Equal(t, "instagram", api.rows[2][4])
	assert.Equal(t, string(StatusGenerated), api.rows[1][9])
}

func TestTrackPackageInitializesOnce(t *testing.T) {
	api := &fakeSheetsAPI{}
	tr := newTestTracker(t, api)

	record, pkg := testRecordAndPackage()
	require.NoError(t, tr.TrackPackage(context.Background(), record, pkg))
	require.NoError(t, tr.TrackPackage(context.Background(), record, pkg))

	assert.Equal(t, 1, api.sheetsCreated)
	assert.Len(t, api.rows, 5)
}

func TestMarkExported(t *testing.T) {
	api := &fakeSheetsAPI{}
	tr := newTestTracker(t, api)

	record, pkg := testRecordAndPackage()
	require.NoError(t, tr.TrackPackage(context.Background(), record, pkg))

	require.NoError(t, tr.MarkExported(context.Background(), record.ID))

	// Both platform rows flip to Exported; the header row is untouched
	assert.Equal(t, string(StatusExported), api.rows[1][9])
	assert.Equal(t, string(StatusExported), api.rows[2][9])
	assert.Equal(t, "Status", api.rows[0][9])
}

func TestMarkExportedUnknownPackage(t *testing.T) {
	api := &fakeSheetsAPI{}
	tr := newTestTracker(t, api)

	record, pkg := testRecordAndPackage()
	require.NoError(t, tr.TrackPackage(context.Background(), record, pkg))

	err := tr.MarkExported(context.Background(), 999)
	assert.ErrorContains(t, err, "not found in tracker")
}

func TestTrackPackagePreviewKeepsRuneBoundaries(t *testing.T) {
	api := &fakeSheetsAPI{}
	tr := newTestTracker(t, api)

	record, pkg := testRecordAndPackage()
	pkg.Platforms = pkg.Platforms[:1]
	pkg.Platforms[0].CaptionA = strings.Repeat("כ", 300)

	require.NoError(t, tr.TrackPackage(context.Background(), record, pkg))

	require.Len(t, api.rows, 2)
	preview, ok := api.rows[1][6].(string)
	require.True(t, ok)

	assert.True(t, utf8.ValidString(preview))
	assert.Equal(t, strings.Repeat("כ", 200)+"...", preview)
}
