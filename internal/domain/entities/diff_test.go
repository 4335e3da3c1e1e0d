//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
)

func TestDiff(t *testing.T) {
	t.Parallel()

	t.Run("should report declared names absent from the install tree", func(t *testing.T) {
		t.Parallel()

		// given
		declared := entities.NewNameSet("lodash", "nodemon", "axios")
		installed := entities.NewNameSet("lodash", "express")

		// when
		result := entities.Diff(declared, installed)

		// then
		assert.Equal(t, []string{"axios", "nodemon"}, result.Missing)
		assert.True(t, result.HasMissing())
		assert.Equal(t, 3, result.DeclaredCount)
		assert.Equal(t, 2, result.InstalledCount)
	})

	t.Run("should report nothing when declared is a subset of installed", func(t *testing.T) {
		t.Parallel()

		// given
		declared := entities.NewNameSet("lodash", "nodemon")
		installed := entities.NewNameSet("lodash", "nodemon", "debug", "ms")

		// when
		result := entities.Diff(declared, installed)

		// then
		assert.Empty(t, result.Missing)
		assert.False(t, result.HasMissing())
		assert.False(t, result.CardinalityMatches())
	})

	t.Run("should report everything missing when nothing is installed", func(t *testing.T) {
		t.Parallel()

		// given
		declared := entities.NewNameSet("lodash", "nodemon")

		// when
		result := entities.Diff(declared, entities.NewNameSet())

		// then
		assert.Equal(t, []string{"lodash", "nodemon"}, result.Missing)
	})

	t.Run("should yield identical results when repeated", func(t *testing.T) {
		t.Parallel()

		// given
		declared := entities.NewNameSet("a", "b", "c")
		installed := entities.NewNameSet("b")

		// when
		first := entities.Diff(declared, installed)
		second := entities.Diff(declared, installed)

		// then
		assert.Equal(t, first, second)
	})
}

func TestNameSet(t *testing.T) {
	t.Parallel()

	t.Run("should ignore empty names", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewNameSet("", "lodash", "lodash")

		// when
		size := set.Len()

		// then
		assert.Equal(t, 1, size)
		assert.True(t, set.Has("lodash"))
		assert.False(t, set.Has(""))
	})

	t.Run("should union without mutating the operands", func(t *testing.T) {
		t.Parallel()

		// given
		left := entities.NewNameSet("a")
		right := entities.NewNameSet("b")

		// when
		union := left.Union(right)

		// then
		assert.Equal(t, []string{"a", "b"}, union.Sorted())
		assert.Equal(t, 1, left.Len())
		assert.Equal(t, 1, right.Len())
	})
}

func TestManifest(t *testing.T) {
	t.Parallel()

	t.Run("should partition declared names by scope", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := &entities.Manifest{
			Dependencies:    map[string]string{"lodash": "^4.17.21"},
			DevDependencies: map[string]string{"nodemon": "^2.0.20"},
		}

		// when
		sets := manifest.Sets()

		// then
		assert.True(t, sets.Production.Has("lodash"))
		assert.False(t, sets.Production.Has("nodemon"))
		assert.True(t, sets.Development.Has("nodemon"))
		assert.Equal(t, []string{"lodash", "nodemon"}, manifest.DeclaredNames().Sorted())
		assert.Equal(t, []entities.DeclaredDependency{
			{Name: "lodash", Range: "^4.17.21", Scope: entities.KindProduction},
			{Name: "nodemon", Range: "^2.0.20", Scope: entities.KindDevelopment},
		}, manifest.Declared())
	})

	t.Run("should reject a name declared in both scopes", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := &entities.Manifest{
			Dependencies:    map[string]string{"typescript": "^5.0.0"},
			DevDependencies: map[string]string{"typescript": "^5.0.0"},
		}

		// when
		err := manifest.Validate()

		// then
		assert.ErrorIs(t, err, entities.ErrManifestFormat)
	})
}
