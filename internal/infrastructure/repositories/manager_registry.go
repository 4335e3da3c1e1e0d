package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	domainRepos "github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// ManagerRegistry manages all registered package manager adapters.
type ManagerRegistry struct {
	managers map[string]domainRepos.ManagerRepository
}

// NewManagerRegistry creates an empty manager registry.
func NewManagerRegistry() *ManagerRegistry {
	return &ManagerRegistry{
		managers: make(map[string]domainRepos.ManagerRepository),
	}
}

// Register adds a manager under its name.
func (r *ManagerRegistry) Register(m domainRepos.ManagerRepository) {
	r.managers[m.Name()] = m
}

// Get returns the manager with the given name.
func (r *ManagerRegistry) Get(name string) (domainRepos.ManagerRepository, error) {
	m, ok := r.managers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownManager, name)
	}
	return m, nil
}

// Names returns the registered manager names in lexical order.
func (r *ManagerRegistry) Names() []string {
	names := make([]string, 0, len(r.managers))
	for name := range r.managers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
