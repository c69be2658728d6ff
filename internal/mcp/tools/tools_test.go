package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/catalog/providers/static"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-atlas/internal/view"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
)

func connect(t *testing.T, opts ...Option) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "vacancy-atlas-test", Version: "0.0.0"}, nil)
	Register(server, logging.Nop(), opts...)

	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "vacancy-atlas-test-client", Version: "0.0.0"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })

	return cs
}

func call(t *testing.T, cs *sdkmcp.ClientSession, name string, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	return res
}

func decode[T any](t *testing.T, res *sdkmcp.CallToolResult) T {
	t.Helper()
	require.False(t, res.IsError, textOf(res))
	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func textOf(res *sdkmcp.CallToolResult) string {
	for _, c := range res.Content {
		if txt, ok := c.(*sdkmcp.TextContent); ok {
			return txt.Text
		}
	}
	return ""
}

func TestRegisterReturnsNames(t *testing.T) {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "n", Version: "0"}, nil)
	resolver, err := vacancy.NewDetailResolver(static.Sample(), nil)
	require.NoError(t, err)

	names := Register(server, nil,
		WithVacancyList(static.Sample()),
		nil,
		WithVacancyMap(static.Sample(), vacancy.StrategyChoropleth),
		WithVacancyDetail(resolver),
		WithSheetsExport(static.Sample(), nil, ""),
	)
	assert.Equal(t, []string{"vacancy_list", "vacancy_map", "vacancy_detail", "sheets_export"}, names)
}

func TestVacancyListJoinsAndFilters(t *testing.T) {
	cs := connect(t, WithVacancyList(static.Sample()))

	page := decode[view.ListPage](t, call(t, cs, "vacancy_list", map[string]any{}))
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 4, page.Matched)
	require.Len(t, page.Items, 4)
	assert.Equal(t, "Amsterdam", page.Items[0].Municipality)
	assert.Equal(t, domain.UnknownMunicipality, page.Items[3].Municipality)
	assert.False(t, page.Items[3].MunicipalityKnown)
	assert.Equal(t, domain.UnspecifiedLabel, page.Items[3].Category)
	require.NotEmpty(t, page.Categories)
	assert.Equal(t, domain.AllCategories, page.Categories[0].Label)

	res := call(t, cs, "vacancy_list", map[string]any{"category": "Techniek"})
	page = decode[view.ListPage](t, res)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Monteur", page.Items[0].Title)
	assert.Equal(t, "Rotterdam", page.Items[0].Municipality)
	assert.Contains(t, textOf(res), "1 van 4 vacatures")

	page = decode[view.ListPage](t, call(t, cs, "vacancy_list", map[string]any{"search": "DASHBOARDS"}))
	require.Len(t, page.Items, 1)
	assert.EqualValues(t, 3, page.Items[0].ID)
}

func TestVacancyListFetchFailure(t *testing.T) {
	src := &static.Provider{Err: &domain.TransportError{Resource: "vacancies", Err: errors.New("connection refused")}}
	cs := connect(t, WithVacancyList(src))

	res := call(t, cs, "vacancy_list", map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(res), "connection refused")
}

func TestVacancyMapStrategies(t *testing.T) {
	cs := connect(t, WithVacancyMap(static.Sample(), vacancy.StrategyChoropleth))

	m := decode[VacancyMapResult](t, call(t, cs, "vacancy_map", map[string]any{}))
	assert.Equal(t, "choropleth", m.Strategy)
	assert.Equal(t, vacancy.Summary{Regions: 3, RegionsWithVacancy: 2, Vacancies: 3}, m.Summary)
	require.Len(t, m.Regions, 3)

	byKey := map[string]RegionSummary{}
	for _, r := range m.Regions {
		byKey[r.Key] = r
	}
	assert.Equal(t, 2, byKey["GM0363"].Count)
	assert.Equal(t, "Aantal vacatures: 2", byKey["GM0363"].CountLabel)
	assert.Len(t, byKey["GM0363"].Preview, 2)
	assert.Equal(t, "#4CAF50", byKey["GM0363"].FillColor)
	assert.False(t, byKey["GM0344"].HasVacancies)
	assert.Equal(t, "#ccc", byKey["GM0344"].FillColor)

	m = decode[VacancyMapResult](t, call(t, cs, "vacancy_map", map[string]any{"strategy": "markers"}))
	assert.Equal(t, "markers", m.Strategy)
	assert.Len(t, m.Regions, 2, "Utrecht has no coordinates")
	for _, r := range m.Regions {
		assert.NotNil(t, r.Coords)
	}

	res := call(t, cs, "vacancy_map", map[string]any{"strategy": "heatmap"})
	assert.True(t, res.IsError)
}

func TestVacancyMapWithoutRegions(t *testing.T) {
	src := static.Sample()
	src.BoundaryList = nil
	cs := connect(t, WithVacancyMap(src, vacancy.StrategyChoropleth))

	res := call(t, cs, "vacancy_map", map[string]any{})
	m := decode[VacancyMapResult](t, res)
	assert.Equal(t, domain.NoMapData, m.Notice)
	assert.Empty(t, m.Regions)
	assert.Equal(t, domain.NoMapData, textOf(res))
}

func TestVacancyDetail(t *testing.T) {
	resolver, err := vacancy.NewDetailResolver(static.Sample(), logging.Nop())
	require.NoError(t, err)
	cs := connect(t, WithVacancyDetail(resolver))

	d := decode[VacancyDetailResult](t, call(t, cs, "vacancy_detail", map[string]any{"id": 1}))
	assert.Equal(t, "Beleidsadviseur", d.Title)
	assert.Equal(t, "Amsterdam", d.Municipality)
	assert.True(t, d.MunicipalityKnown)
	assert.Equal(t, "/", d.BackHref)
	require.Len(t, d.Breadcrumb, 2)
	assert.Equal(t, "/vacancy/1", d.Breadcrumb[1].Href)

	d = decode[VacancyDetailResult](t, call(t, cs, "vacancy_detail", map[string]any{"id": 42}))
	assert.Equal(t, domain.UnknownMunicipality, d.Municipality)
	assert.False(t, d.MunicipalityKnown)

	res := call(t, cs, "vacancy_detail", map[string]any{"id": 999})
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(res), domain.VacancyNotFound)
}

type fakeSheets struct {
	got SheetsExportRequest
	err error
}

func (f *fakeSheets) Export(_ context.Context, req SheetsExportRequest) (SheetsExportResult, error) {
	f.got = req
	if f.err != nil {
		return SheetsExportResult{}, f.err
	}
	return SheetsExportResult{
		SpreadsheetID: req.SpreadsheetID,
		Tab:           req.Tab,
		WrittenRows:   len(req.Rows),
		Mode:          "append",
		Message:       "exported",
	}, nil
}

func TestSheetsExportFiltersRows(t *testing.T) {
	client := &fakeSheets{}
	cs := connect(t, WithSheetsExport(static.Sample(), client, "default-sheet"))

	out := decode[SheetsExportResult](t, call(t, cs, "sheets_export", map[string]any{
		"category": "Beleid",
		"tab":      "Vacatures",
	}))
	assert.Equal(t, "default-sheet", out.SpreadsheetID)
	assert.Equal(t, 1, out.WrittenRows)
	assert.NotEmpty(t, out.CompletedAt)

	require.Len(t, client.got.Rows, 1)
	row := client.got.Rows[0]
	assert.Equal(t, "Beleidsadviseur", row.Title)
	assert.Equal(t, "Amsterdam", row.Municipality)
	assert.Equal(t, "/vacancy/1", row.Link)
	assert.Equal(t, "Vacatures", client.got.Tab)
}

func TestSheetsExportErrors(t *testing.T) {
	cs := connect(t, WithSheetsExport(static.Sample(), &fakeSheets{}, ""))
	res := call(t, cs, "sheets_export", map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(res), "spreadsheet_id")

	cs = connect(t, WithSheetsExport(static.Sample(), nil, "sheet"))
	res = call(t, cs, "sheets_export", map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(res), "not configured")

	cs = connect(t, WithSheetsExport(static.Sample(), &fakeSheets{err: errors.New("quota exceeded")}, "sheet"))
	res = call(t, cs, "sheets_export", map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(res), "quota exceeded")
}
