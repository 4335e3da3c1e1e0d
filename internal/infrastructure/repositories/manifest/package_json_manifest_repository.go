package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// FileName is the manifest every supported manager reads.
const FileName = "package.json"

// PackageJSONManifestRepository reads the dependencies declared in package.json.
type PackageJSONManifestRepository struct{}

// NewPackageJSONManifestRepository creates a new PackageJSONManifestRepository.
func NewPackageJSONManifestRepository() repositories.ManifestRepository {
	return &PackageJSONManifestRepository{}
}

// packageJSON keeps only the fields the workflows consult.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Read loads projectDir/package.json.
func (it *PackageJSONManifestRepository) Read(projectDir string) (*entities.Manifest, error) {
	path := filepath.Join(projectDir, FileName)
	logger.Debugf("Reading manifest from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", entities.ErrManifestMissing, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var pkg packageJSON
	if unmarshalErr := json.Unmarshal(data, &pkg); unmarshalErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrManifestFormat, path, unmarshalErr)
	}

	manifest := &entities.Manifest{
		Path:            path,
		Dependencies:    nonNil(pkg.Dependencies),
		DevDependencies: nonNil(pkg.DevDependencies),
	}
	if validateErr := manifest.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return manifest, nil
}

func nonNil(deps map[string]string) map[string]string {
	if deps == nil {
		return map[string]string{}
	}
	return deps
}
