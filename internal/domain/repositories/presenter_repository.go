package repositories

import "github.com/rios0rios0/depdoctor/internal/domain/entities"

// PresenterRepository renders workflow data for humans.
type PresenterRepository interface {
	Outdated(records []entities.OutdatedRecord) string
	Vulnerabilities(records []entities.VulnerabilityRecord) string
	Actions(actions []entities.RemediationAction) string
}
