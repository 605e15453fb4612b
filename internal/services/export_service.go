package services

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/gitroast/gitroast/internal/models"
)

// ExportService renders a roasted profile as a shareable .xlsx workbook
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildWorkbook produces a workbook with Summary, Categories, Repositories
// and Languages sheets for the given profile
func (s *ExportService) BuildWorkbook(profile *models.GitHubProfile) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	if err := s.writeSummarySheet(f, profile); err != nil {
		return nil, err
	}
	if err := s.writeCategoriesSheet(f, profile); err != nil {
		return nil, err
	}
	if err := s.writeRepositoriesSheet(f, profile); err != nil {
		return nil, err
	}
	if err := s.writeLanguagesSheet(f, profile); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

func (s *ExportService) writeSummarySheet(f *excelize.File, profile *models.GitHubProfile) error {
	sheet := "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Username", profile.Username},
		{"Overall Score", profile.EvaluationResults.OverallScore},
		{"Total Repositories", profile.Stats.TotalRepos},
		{"Total Stars", profile.Stats.TotalStars},
		{"Total Forks", profile.Stats.TotalForks},
		{"Total Contributions", profile.Stats.TotalContributions},
		{"Contributions Last Year", profile.Stats.ContributionsLastYear},
		{"Contribution Streak (days)", profile.Stats.ContributionStreak},
		{"Avg Contributions / Week", profile.Stats.AverageContributionsPerWeek},
	}

	for i, row := range rows {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return err
		}
	}

	return nil
}

func (s *ExportService) writeCategoriesSheet(f *excelize.File, profile *models.GitHubProfile) error {
	sheet := "Categories"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"Category", "Score", "Comment", "Recommendation"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, category := range profile.EvaluationResults.Categories {
		row := []interface{}{category.Name, category.Score, category.Comment, category.Recommendation}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	return nil
}

func (s *ExportService) writeRepositoriesSheet(f *excelize.File, profile *models.GitHubProfile) error {
	sheet := "Repositories"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"Name", "Description", "Language", "Stars", "Forks", "Last Updated"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, repo := range profile.Repositories {
		row := []interface{}{
			repo.Name,
			repo.DescriptionOrEmpty(),
			repo.Language,
			repo.Stars,
			repo.Forks,
			repo.LastUpdated.Format("2006-01-02"),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	return nil
}

func (s *ExportService) writeLanguagesSheet(f *excelize.File, profile *models.GitHubProfile) error {
	sheet := "Languages"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"Language", "Repositories"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	// Deterministic order: most repositories first, ties alphabetical
	languages := make([]string, 0, len(profile.Stats.TopLanguages))
	for language := range profile.Stats.TopLanguages {
		languages = append(languages, language)
	}
	sort.Slice(languages, func(i, j int) bool {
		ci := profile.Stats.TopLanguages[languages[i]]
		cj := profile.Stats.TopLanguages[languages[j]]
		if ci != cj {
			return ci > cj
		}
		return languages[i] < languages[j]
	})

	for i, language := range languages {
		row := []interface{}{language, profile.Stats.TopLanguages[language]}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	return nil
}
