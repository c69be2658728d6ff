package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-atlas/internal/domain/catalog"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-atlas/internal/view"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
)

// VacancyListParams defines the arguments for the vacancy_list tool
type VacancyListParams struct {
	Search    string `json:"search,omitempty" jsonschema:"Case-insensitive text matched against title and description"`
	Category  string `json:"category,omitempty" jsonschema:"Function category to keep, empty for all"`
	Education string `json:"education,omitempty" jsonschema:"Education level to keep, empty for all"`
}

func (p VacancyListParams) criteria() vacancy.Criteria {
	return vacancy.NewCriteria(p.Search, p.Category, p.Education)
}

type vacancyListTool struct {
	source catalog.Source
	logger *logging.Logger
}

// WithVacancyList registers the vacancy_list tool
func WithVacancyList(source catalog.Source) Option {
	return func(reg *registry) {
		t := vacancyListTool{source: source, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "vacancy_list",
			Description: "List municipal vacancies joined with their municipality, filtered by search text, function category and education level",
		}, t.handle)
		reg.add("vacancy_list")
	}
}

func (t vacancyListTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params VacancyListParams) (*sdkmcp.CallToolResult, view.ListPage, error) {
	t.logger.Debug("vacancy_list called", "search", params.Search, "category", params.Category, "education", params.Education)

	data, err := load(ctx, view.NewListView(t.source, t.logger), view.NoParams{})
	if err != nil {
		return nil, view.ListPage{}, err
	}

	page := data.Page(params.criteria())
	return textResult(renderList(page)), page, nil
}

func renderList(page view.ListPage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d van %d vacatures\n", page.Matched, page.Total)
	for _, it := range page.Items {
		fmt.Fprintf(&b, "- [%d] %s, %s (%s, %s)\n", it.ID, it.Title, it.Municipality, it.Category, it.EducationLevel)
	}
	return strings.TrimRight(b.String(), "\n")
}
