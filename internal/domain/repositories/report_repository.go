package repositories

import "github.com/rios0rios0/depdoctor/internal/domain/entities"

// ReportRepository persists the run summary record.
type ReportRepository interface {
	Save(path string, summary entities.RunSummary) error
}
