package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ManagerEnvVar overrides the configured package manager.
const ManagerEnvVar = "DEPDOCTOR_MANAGER"

// Settings is the file-based configuration of depdoctor.
type Settings struct {
	Manager       string  `yaml:"manager"`
	DetectManager bool    `yaml:"detect_manager"`
	Report        string  `yaml:"report"`
	Answers       Answers `yaml:"answers"`
}

// Answers pre-configures the external decision points for non-interactive runs.
type Answers struct {
	Workflow         string `yaml:"workflow"`
	UpdateWanted     *bool  `yaml:"update_wanted"`
	InstallAuditTool *bool  `yaml:"install_audit_tool"`
	Vulnerabilities  string `yaml:"vulnerabilities"`
}

// NewSettings reads and validates the configuration file at path.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return &settings, nil
}

// LoadSettings resolves the settings for a run: the explicit config path, or
// the first file found by FindConfigFile, or defaults. The manager can then be
// overridden from the environment or from a .env file in the project directory.
func LoadSettings(configPath, projectDir string) (*Settings, error) {
	settings := &Settings{}

	if configPath == "" {
		if found, err := FindConfigFile(); err == nil {
			configPath = found
		}
	}
	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)
		loaded, err := NewSettings(configPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if manager := lookupEnv(projectDir, ManagerEnvVar); manager != "" {
		settings.Manager = manager
	}
	return settings, settings.Validate()
}

// Validate checks the enumerated values.
func (s *Settings) Validate() error {
	switch s.Manager {
	case "", ManagerNpm, ManagerYarn, ManagerPnpm:
	default:
		return fmt.Errorf("%w: %q (expected npm, yarn or pnpm)", ErrUnknownManager, s.Manager)
	}
	if s.Answers.Vulnerabilities != "" {
		if _, err := ParseVulnerabilityStrategy(s.Answers.Vulnerabilities); err != nil {
			return err
		}
	}
	switch Workflow(s.Answers.Workflow) {
	case "", WorkflowScan, WorkflowAnalyze, WorkflowClean:
	default:
		return fmt.Errorf("invalid workflow %q (expected scan, analyze or clean)", s.Answers.Workflow)
	}
	return nil
}

// lookupEnv prefers the process environment over the project's .env file.
func lookupEnv(projectDir, key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	envFile := filepath.Join(projectDir, ".env")
	if _, err := os.Stat(envFile); err != nil {
		return ""
	}
	values, err := godotenv.Read(envFile)
	if err != nil {
		logger.Warnf("Failed to read %s: %v", envFile, err)
		return ""
	}
	return values[key]
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".depdoctor.yaml",
		".depdoctor.yml",
		"depdoctor.yaml",
		"depdoctor.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}
