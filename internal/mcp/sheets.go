package mcp

import (
	"context"
	"fmt"

	"github.com/honeycarbs/vacancy-atlas/internal/mcp/tools"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
	sheetsclient "github.com/honeycarbs/vacancy-atlas/pkg/sheets"
)

// sheetsWriter is the subset of the Sheets client used for export
type sheetsWriter interface {
	AppendValues(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) (int64, error)
	UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) (int64, error)
	ClearValues(ctx context.Context, spreadsheetID, rng string) error
}

var sheetHeader = []interface{}{"ID", "Titel", "Gemeente", "Functiecategorie", "Opleidingsniveau", "Link"}

type sheetsClientAdapter struct {
	client sheetsWriter
	logger *logging.Logger
}

func newSheetsClientAdapter(client sheetsWriter, logger *logging.Logger) *sheetsClientAdapter {
	if logger == nil {
		logger = logging.Nop()
	}
	return &sheetsClientAdapter{client: client, logger: logger.Named("sheets")}
}

// Export appends rows to the tab, or with ClearTab replaces the tab content
// including a header row
func (a *sheetsClientAdapter) Export(ctx context.Context, req tools.SheetsExportRequest) (tools.SheetsExportResult, error) {
	result := tools.SheetsExportResult{
		SpreadsheetID: req.SpreadsheetID,
		Tab:           req.Tab,
	}

	if a.client == nil {
		return result, fmt.Errorf("sheets: client not configured")
	}

	if len(req.Rows) == 0 && !req.ClearTab {
		result.Mode = "noop"
		result.Message = "no rows to export"
		return result, nil
	}

	values := convertRowsToValues(req.Rows)

	if req.ClearTab {
		if err := a.client.ClearValues(ctx, req.SpreadsheetID, sheetsclient.Range(req.Tab, "A:Z")); err != nil {
			return result, fmt.Errorf("sheets: failed to clear sheet: %w", err)
		}
		values = append([][]interface{}{sheetHeader}, values...)
		if _, err := a.client.UpdateValues(ctx, req.SpreadsheetID, sheetsclient.Range(req.Tab, "A1"), values); err != nil {
			return result, fmt.Errorf("sheets: failed to replace rows: %w", err)
		}
		result.Mode = "replace"
	} else {
		if _, err := a.client.AppendValues(ctx, req.SpreadsheetID, sheetsclient.Range(req.Tab, "A1"), values); err != nil {
			return result, fmt.Errorf("sheets: failed to append rows: %w", err)
		}
		result.Mode = "append"
	}

	result.WrittenRows = len(req.Rows)
	result.Message = fmt.Sprintf("successfully exported %d row(s)", result.WrittenRows)
	a.logger.Debug("rows written", "spreadsheet_id", req.SpreadsheetID, "tab", req.Tab, "mode", result.Mode, "rows", result.WrittenRows)

	return result, nil
}

func convertRowsToValues(rows []tools.SheetRow) [][]interface{} {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = []interface{}{
			row.ID,
			row.Title,
			row.Municipality,
			row.Category,
			row.EducationLevel,
			row.Link,
		}
	}
	return values
}
