package presenter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

var (
	colorDim    = lipgloss.Color("240")
	colorCyan   = lipgloss.Color("86")
	colorGreen  = lipgloss.Color("42")
	colorYellow = lipgloss.Color("214")
	colorRed    = lipgloss.Color("196")
	colorPurple = lipgloss.Color("129")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// TablePresenterRepository renders workflow data as terminal tables.
type TablePresenterRepository struct{}

// NewTablePresenterRepository creates a new TablePresenterRepository.
func NewTablePresenterRepository() repositories.PresenterRepository {
	return &TablePresenterRepository{}
}

func (it *TablePresenterRepository) Outdated(records []entities.OutdatedRecord) string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Name, record.Current, record.Wanted, record.Latest,
			string(record.Kind), string(record.UpdateType),
		})
	}

	const updateCol = 5
	return render(
		[]string{"Package", "Current", "Wanted", "Latest", "Type", "Update"},
		rows,
		func(row, col int) lipgloss.Style {
			if col != updateCol {
				return cellStyle
			}
			return cellStyle.Foreground(updateColor(records[row].UpdateType))
		},
	)
}

func (it *TablePresenterRepository) Vulnerabilities(records []entities.VulnerabilityRecord) string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		fix := record.RecommendedFix
		if !record.HasFix() {
			fix = "-"
		}
		rows = append(rows, []string{record.Name, record.Severity.String(), fix})
	}

	const severityCol = 1
	return render(
		[]string{"Package", "Severity", "Fix"},
		rows,
		func(row, col int) lipgloss.Style {
			if col != severityCol {
				return cellStyle
			}
			return cellStyle.Foreground(severityColor(records[row].Severity))
		},
	)
}

func (it *TablePresenterRepository) Actions(actions []entities.RemediationAction) string {
	rows := make([][]string, 0, len(actions))
	for _, action := range actions {
		command := action.Command
		if command == "" {
			command = "-"
		}
		rows = append(rows, []string{action.Name, command, string(action.Outcome)})
	}

	const outcomeCol = 2
	return render(
		[]string{"Package", "Command", "Outcome"},
		rows,
		func(row, col int) lipgloss.Style {
			if col != outcomeCol {
				return cellStyle
			}
			return cellStyle.Foreground(outcomeColor(actions[row].Outcome))
		},
	)
}

func render(headers []string, rows [][]string, cell func(row, col int) lipgloss.Style) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < 0 || row >= len(rows) {
				return cellStyle
			}
			return cell(row, col)
		})
	return fmt.Sprintln(t.Render())
}

func updateColor(update entities.UpdateType) lipgloss.Color {
	switch update {
	case entities.UpdateMajor:
		return colorRed
	case entities.UpdateMinor:
		return colorYellow
	case entities.UpdatePatch:
		return colorGreen
	default:
		return colorDim
	}
}

func severityColor(severity entities.Severity) lipgloss.Color {
	switch severity {
	case entities.SeverityCritical:
		return colorPurple
	case entities.SeverityHigh:
		return colorRed
	case entities.SeverityModerate:
		return colorYellow
	case entities.SeverityLow:
		return colorGreen
	default:
		return colorDim
	}
}

func outcomeColor(outcome entities.RemediationOutcome) lipgloss.Color {
	switch outcome {
	case entities.OutcomeApplied:
		return colorGreen
	case entities.OutcomeFailed:
		return colorRed
	case entities.OutcomePending:
		return colorCyan
	default:
		return colorDim
	}
}
