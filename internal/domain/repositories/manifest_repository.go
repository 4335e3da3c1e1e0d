package repositories

import "github.com/rios0rios0/depdoctor/internal/domain/entities"

// ManifestRepository loads the declared dependencies of a project.
type ManifestRepository interface {
	// Read returns the manifest found in projectDir. A missing file yields an
	// error wrapping entities.ErrManifestMissing.
	Read(projectDir string) (*entities.Manifest, error)
}
