package vacancy_test

import "github.com/honeycarbs/vacancy-atlas/internal/domain"

func sampleVacancies() []domain.Vacancy {
	return []domain.Vacancy{
		{ID: 1, Title: "Boekhouder", MunicipalityKey: "GM0363", FunctionCategory: "Finance"},
		{ID: 2, Title: "Loodgieter", MunicipalityKey: "GM0363", FunctionCategory: "Techniek"},
	}
}

func catalogVacancies() []domain.Vacancy {
	return []domain.Vacancy{
		{ID: 1, Title: "Boekhouder", MunicipalityKey: "GM0363", Description: "Financiële administratie", FunctionCategory: "Finance", EducationLevel: "HBO"},
		{ID: 2, Title: "Loodgieter", MunicipalityKey: "GM0363", Description: "Onderhoud van gebouwen", FunctionCategory: "Techniek", EducationLevel: "MBO"},
		{ID: 3, Title: "Data-analist", MunicipalityKey: "GM0599", Description: "Dashboards en DATA pipelines", FunctionCategory: "Data", EducationLevel: "WO"},
		{ID: 4, Title: "Controller", MunicipalityKey: "GM0363", Description: "", FunctionCategory: "Finance", EducationLevel: domain.Unspecified},
		{ID: 5, Title: "Beleidsmedewerker", MunicipalityKey: "GM0014", Description: "Beleid rond data", FunctionCategory: domain.Unspecified, EducationLevel: "HBO"},
		{ID: 6, Title: "Jurist", MunicipalityKey: "GM0363", Description: "Bestuursrecht", FunctionCategory: "Juridisch", EducationLevel: "WO"},
		{ID: 7, Title: "Stagiair", MunicipalityKey: "", Description: "Onbekende gemeente", FunctionCategory: domain.Unspecified, EducationLevel: domain.Unspecified},
	}
}

func catalogMunicipalities() []domain.Municipality {
	return []domain.Municipality{
		{Key: "GM0363", Name: "Amsterdam", Coords: &domain.Coordinates{Latitude: 52.37, Longitude: 4.89}},
		{Key: "GM0599", Name: "Rotterdam"},
		{Key: "GM0014", Name: "Groningen", Coords: &domain.Coordinates{Latitude: 53.22, Longitude: 6.57}},
		{Key: "GM0344", Name: "Utrecht", Coords: &domain.Coordinates{Latitude: 52.09, Longitude: 5.12}},
	}
}

func ids(vs []domain.Vacancy) []domain.VacancyID {
	out := make([]domain.VacancyID, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.ID)
	}
	return out
}
