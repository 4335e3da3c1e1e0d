package entities

import "sort"

// DependencyKind is the manifest scope a dependency belongs to.
type DependencyKind string

const (
	KindProduction  DependencyKind = "production"
	KindDevelopment DependencyKind = "development"
	KindUnknown     DependencyKind = "unknown"
)

// ParseDependencyKind maps the dependency type labels reported by the package
// managers ("dependencies", "devDependencies", ...) to a DependencyKind.
func ParseDependencyKind(raw string) DependencyKind {
	switch raw {
	case "dependencies", "production", "prod":
		return KindProduction
	case "devDependencies", "development", "dev":
		return KindDevelopment
	default:
		return KindUnknown
	}
}

// DeclaredDependency is a single entry of the project manifest.
type DeclaredDependency struct {
	Name  string
	Range string
	Scope DependencyKind
}

// NameSet is a set of package names.
type NameSet map[string]struct{}

// NewNameSet builds a set from the given names.
func NewNameSet(names ...string) NameSet {
	set := make(NameSet, len(names))
	for _, name := range names {
		set.Add(name)
	}
	return set
}

// Add inserts a name; empty names are ignored.
func (s NameSet) Add(name string) {
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

// Has reports whether the name is a member of the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the cardinality of the set.
func (s NameSet) Len() int {
	return len(s)
}

// Sorted returns the members in lexical order.
func (s NameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Difference returns the members of s that are not in other.
func (s NameSet) Difference(other NameSet) NameSet {
	result := make(NameSet)
	for name := range s {
		if !other.Has(name) {
			result[name] = struct{}{}
		}
	}
	return result
}

// Union returns a new set holding the members of both sets.
func (s NameSet) Union(other NameSet) NameSet {
	result := make(NameSet, len(s)+len(other))
	for name := range s {
		result[name] = struct{}{}
	}
	for name := range other {
		result[name] = struct{}{}
	}
	return result
}
