package report

import (
	"encoding/json"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

const reportFileMode = 0o644

// JSONReportRepository writes the run summary as indented JSON.
type JSONReportRepository struct{}

// NewJSONReportRepository creates a new JSONReportRepository.
func NewJSONReportRepository() repositories.ReportRepository {
	return &JSONReportRepository{}
}

func (it *JSONReportRepository) Save(path string, summary entities.RunSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode run summary: %w", err)
	}
	if writeErr := os.WriteFile(path, append(data, '\n'), reportFileMode); writeErr != nil {
		return fmt.Errorf("failed to write report %s: %w", path, writeErr)
	}
	logger.Infof("Report saved to %s", path)
	return nil
}
