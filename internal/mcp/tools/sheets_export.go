package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-atlas/internal/domain/catalog"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-atlas/internal/view"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
)

// SheetsClient writes exported rows to a spreadsheet
type SheetsClient interface {
	Export(ctx context.Context, req SheetsExportRequest) (SheetsExportResult, error)
}

// SheetRow is one exported vacancy
type SheetRow struct {
	ID             int64
	Title          string
	Municipality   string
	Category       string
	EducationLevel string
	Link           string
}

// SheetsExportRequest is what the tool hands to the SheetsClient
type SheetsExportRequest struct {
	SpreadsheetID string
	Tab           string
	ClearTab      bool
	Rows          []SheetRow
}

// SheetsExportParams defines the arguments for the sheets_export tool
type SheetsExportParams struct {
	Search        string `json:"search,omitempty" jsonschema:"Same search text as vacancy_list"`
	Category      string `json:"category,omitempty" jsonschema:"Same function category filter as vacancy_list"`
	Education     string `json:"education,omitempty" jsonschema:"Same education level filter as vacancy_list"`
	SpreadsheetID string `json:"spreadsheet_id,omitempty" jsonschema:"Google Sheets document ID, default from server config"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name to write to"`
	ClearTab      bool   `json:"clear_tab,omitempty" jsonschema:"If true, replaces the tab content instead of appending"`
}

// SheetsExportResult describes the summary returned after export
type SheetsExportResult struct {
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Target spreadsheet ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Target tab name"`
	WrittenRows   int    `json:"written_rows" jsonschema:"How many vacancy rows were written"`
	Mode          string `json:"mode" jsonschema:"append, replace or noop"`
	CompletedAt   string `json:"completed_at" jsonschema:"RFC 3339 timestamp when export finished"`
	Message       string `json:"message,omitempty" jsonschema:"Optional status message"`
}

// ErrNoSpreadsheet is returned when neither the call nor the config names a spreadsheet
var ErrNoSpreadsheet = errors.New("sheets_export: spreadsheet_id is required")

type sheetsExportTool struct {
	source        catalog.Source
	client        SheetsClient
	spreadsheetID string
	logger        *logging.Logger
	now           func() time.Time
}

// WithSheetsExport registers the sheets_export tool
func WithSheetsExport(source catalog.Source, client SheetsClient, defaultSpreadsheetID string) Option {
	return func(reg *registry) {
		t := sheetsExportTool{
			source:        source,
			client:        client,
			spreadsheetID: defaultSpreadsheetID,
			logger:        reg.logger,
			now:           time.Now,
		}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "sheets_export",
			Description: "Export the filtered vacancy list to Google Sheets",
		}, t.handle)
		reg.add("sheets_export")
	}
}

func (t sheetsExportTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params SheetsExportParams) (*sdkmcp.CallToolResult, SheetsExportResult, error) {
	req := SheetsExportRequest{
		SpreadsheetID: strings.TrimSpace(params.SpreadsheetID),
		Tab:           strings.TrimSpace(params.Tab),
		ClearTab:      params.ClearTab,
	}
	if req.SpreadsheetID == "" {
		req.SpreadsheetID = t.spreadsheetID
	}
	if req.SpreadsheetID == "" {
		return nil, SheetsExportResult{}, ErrNoSpreadsheet
	}
	if t.client == nil {
		return nil, SheetsExportResult{}, fmt.Errorf("sheets_export: Google Sheets client not configured")
	}

	data, err := load(ctx, view.NewListView(t.source, t.logger), view.NoParams{})
	if err != nil {
		return nil, SheetsExportResult{}, err
	}

	page := data.Page(vacancy.NewCriteria(params.Search, params.Category, params.Education))
	req.Rows = make([]SheetRow, 0, len(page.Items))
	for _, it := range page.Items {
		req.Rows = append(req.Rows, SheetRow{
			ID:             int64(it.ID),
			Title:          it.Title,
			Municipality:   it.Municipality,
			Category:       it.Category,
			EducationLevel: it.EducationLevel,
			Link:           it.Href,
		})
	}

	result, err := t.client.Export(ctx, req)
	if err != nil {
		t.logger.Warn("sheets export failed", "spreadsheet_id", req.SpreadsheetID, "err", err)
		return nil, SheetsExportResult{}, err
	}
	result.CompletedAt = t.now().UTC().Format(time.RFC3339)

	t.logger.Info("sheets export completed", "spreadsheet_id", result.SpreadsheetID, "rows", result.WrittenRows, "mode", result.Mode)
	return textResult(result.Message), result, nil
}
