package entities

import "fmt"

// Manifest holds the declared dependencies of a project, split by scope.
// It is read once per workflow and never mutated afterwards.
type Manifest struct {
	Path            string
	Dependencies    map[string]string
	DevDependencies map[string]string
}

// Validate rejects manifests that declare a name in both scopes.
func (m *Manifest) Validate() error {
	for name := range m.Dependencies {
		if _, dup := m.DevDependencies[name]; dup {
			return fmt.Errorf("%w: %q is declared in both dependencies and devDependencies",
				ErrManifestFormat, name)
		}
	}
	return nil
}

// ProductionNames returns the names declared under "dependencies".
func (m *Manifest) ProductionNames() NameSet {
	return namesOf(m.Dependencies)
}

// DevelopmentNames returns the names declared under "devDependencies".
func (m *Manifest) DevelopmentNames() NameSet {
	return namesOf(m.DevDependencies)
}

// DeclaredNames returns every declared name regardless of scope.
func (m *Manifest) DeclaredNames() NameSet {
	return m.ProductionNames().Union(m.DevelopmentNames())
}

// Declared lists the manifest entries sorted by scope and name.
func (m *Manifest) Declared() []DeclaredDependency {
	result := make([]DeclaredDependency, 0, len(m.Dependencies)+len(m.DevDependencies))
	result = appendDeclared(result, m.Dependencies, KindProduction)
	result = appendDeclared(result, m.DevDependencies, KindDevelopment)
	return result
}

func appendDeclared(dst []DeclaredDependency, deps map[string]string, scope DependencyKind) []DeclaredDependency {
	names := namesOf(deps).Sorted()
	for _, name := range names {
		dst = append(dst, DeclaredDependency{Name: name, Range: deps[name], Scope: scope})
	}
	return dst
}

func namesOf(deps map[string]string) NameSet {
	set := make(NameSet, len(deps))
	for name := range deps {
		set.Add(name)
	}
	return set
}

// DeclaredSets is the scope partition the remediation planner works with.
type DeclaredSets struct {
	Production  NameSet
	Development NameSet
}

// Sets returns the production/development partition of the manifest.
func (m *Manifest) Sets() DeclaredSets {
	return DeclaredSets{
		Production:  m.ProductionNames(),
		Development: m.DevelopmentNames(),
	}
}
