//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depdoctor/internal/domain/commands"
	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	infraRepos "github.com/rios0rios0/depdoctor/internal/infrastructure/repositories"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/decision"
	"github.com/rios0rios0/depdoctor/test/infrastructure/repositorydoubles"
)

func TestDetectLocalPackageManager(t *testing.T) {
	t.Parallel()

	t.Run("should prefer pnpm over yarn", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t, entities.ManagerNpm)
		f.touch(t, "pnpm-lock.yaml")
		f.touch(t, "yarn.lock")

		// when
		got := commands.DetectLocalPackageManager(f.dir)

		// then
		assert.Equal(t, entities.ManagerPnpm, got)
	})

	t.Run("should detect yarn from yarn.lock", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t, entities.ManagerNpm)
		f.touch(t, "yarn.lock")

		// when
		got := commands.DetectLocalPackageManager(f.dir)

		// then
		assert.Equal(t, entities.ManagerYarn, got)
	})

	t.Run("should default to npm", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()

		// when
		got := commands.DetectLocalPackageManager(dir)

		// then
		assert.Equal(t, entities.ManagerNpm, got)
	})
}

func TestManagerResolution(t *testing.T) {
	t.Parallel()

	newRegistry := func() (*infraRepos.ManagerRegistry, *repositorydoubles.SpyManagerRepository) {
		registry := infraRepos.NewManagerRegistry()
		yarn := repositorydoubles.NewSpyManagerRepository(entities.ManagerYarn)
		yarn.Installed = []entities.NameSet{entities.NewNameSet("lodash", "nodemon")}
		registry.Register(repositorydoubles.NewSpyManagerRepository(entities.ManagerNpm))
		registry.Register(yarn)
		return registry, yarn
	}

	t.Run("should ask the caller when no manager is configured", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t, entities.ManagerNpm)
		registry, yarn := newRegistry()
		f.registry = registry
		f.decider.Manager = entities.ManagerYarn
		opts := f.options()
		opts.Manager = ""

		// when
		result, err := f.scanCommand().Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ManagerYarn, result.Manager)
		assert.Equal(t, []string{"npm", "yarn"}, f.decider.ManagerOptions)
		assert.Equal(t, 1, yarn.ListInstalledCalls)
	})

	t.Run("should detect the manager from the lockfile when enabled", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t, entities.ManagerNpm)
		registry, _ := newRegistry()
		f.registry = registry
		f.touch(t, "yarn.lock")
		opts := f.options()
		opts.Manager = ""
		opts.DetectManager = true

		// when
		result, err := f.scanCommand().Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ManagerYarn, result.Manager)
		assert.Nil(t, f.decider.ManagerOptions)
	})

	t.Run("should fail non-interactive runs without a manager", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t, entities.ManagerNpm)
		opts := f.options()
		opts.Manager = ""
		opts.Decider = decision.NewScriptedDecisionRepository(entities.Answers{})

		// when
		_, err := f.scanCommand().Execute(context.Background(), opts)

		// then
		assert.ErrorIs(t, err, entities.ErrDecisionUnavailable)
	})

	t.Run("should reject an unknown manager", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t, entities.ManagerNpm)
		opts := f.options()
		opts.Manager = "bun"

		// when
		_, err := f.scanCommand().Execute(context.Background(), opts)

		// then
		assert.ErrorIs(t, err, entities.ErrUnknownManager)
	})
}
