package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-atlas/internal/domain"
	"github.com/honeycarbs/vacancy-atlas/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-atlas/internal/view"
	"github.com/honeycarbs/vacancy-atlas/pkg/logging"
)

// VacancyDetailParams defines the arguments for the vacancy_detail tool
type VacancyDetailParams struct {
	ID int64 `json:"id" jsonschema:"Vacancy identifier"`
}

// VacancyDetailResult is a vacancy merged with its municipality
type VacancyDetailResult struct {
	ID                int64          `json:"id"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Municipality      string         `json:"municipality"`
	MunicipalityKnown bool           `json:"municipality_known"`
	Category          string         `json:"function_category"`
	EducationLevel    string         `json:"education_level"`
	Breadcrumb        []vacancy.Link `json:"breadcrumb"`
	BackHref          string         `json:"back_href"`
}

type vacancyDetailTool struct {
	resolver *vacancy.DetailResolver
	logger   *logging.Logger
}

// WithVacancyDetail registers the vacancy_detail tool
func WithVacancyDetail(resolver *vacancy.DetailResolver) Option {
	return func(reg *registry) {
		t := vacancyDetailTool{resolver: resolver, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "vacancy_detail",
			Description: "Fetch one vacancy and the name of its municipality",
		}, t.handle)
		reg.add("vacancy_detail")
	}
}

func (t vacancyDetailTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params VacancyDetailParams) (*sdkmcp.CallToolResult, VacancyDetailResult, error) {
	d, err := load(ctx, view.NewDetailView(t.resolver, t.logger), view.DetailParams{ID: domain.VacancyID(params.ID)})
	if err != nil {
		return nil, VacancyDetailResult{}, err
	}

	out := VacancyDetailResult{
		ID:                int64(d.Vacancy.ID),
		Title:             d.Vacancy.Title,
		Description:       d.Vacancy.Description,
		Municipality:      d.MunicipalityName,
		MunicipalityKnown: d.MunicipalityKnown,
		Category:          d.CategoryLabel,
		EducationLevel:    d.EducationLabel,
		Breadcrumb:        d.Breadcrumb,
		BackHref:          d.BackHref,
	}

	msg := fmt.Sprintf("%s\nGemeente: %s\nFunctiecategorie: %s\nOpleidingsniveau: %s\n\n%s",
		out.Title, out.Municipality, out.Category, out.EducationLevel, out.Description)
	return textResult(msg), out, nil
}
