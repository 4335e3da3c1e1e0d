//go:build unit

package nodejs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/nodejs"
)

func TestParseParseableList(t *testing.T) {
	t.Parallel()

	t.Run("should keep the part after the last node_modules segment", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte(`/home/dev/app
/home/dev/app/node_modules/lodash
/home/dev/app/node_modules/@types/node
/home/dev/app/node_modules/.pnpm/nodemon@2.0.22/node_modules/nodemon
/home/dev/app/node_modules/.bin
npm WARN config production Use --omit=dev instead.
`)

		// when
		installed := nodejs.ParseParseableList(output)

		// then
		assert.Equal(t, []string{"@types/node", "lodash", "nodemon"}, installed.Sorted())
	})

	t.Run("should normalize windows paths", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte("C:\\dev\\app\\node_modules\\express\r\n")

		// when
		installed := nodejs.ParseParseableList(output)

		// then
		assert.True(t, installed.Has("express"))
		assert.Equal(t, 1, installed.Len())
	})
}

func TestParseTreeList(t *testing.T) {
	t.Parallel()

	t.Run("should read only the top-level tree lines", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte(`yarn list v1.22.19
warning Filtering by arguments is deprecated.
├─ @babel/core@7.23.0
├─ lodash@4.17.21
└─ nodemon@2.0.22
Done in 0.31s.
`)

		// when
		installed := nodejs.ParseTreeList(output)

		// then
		assert.Equal(t, []string{"@babel/core", "lodash", "nodemon"}, installed.Sorted())
	})
}

func TestStripVersion(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"lodash@4.17.21":     "lodash",
		"@types/node@20.1.0": "@types/node",
		"@types/node":        "@types/node",
		"plain":              "plain",
	}

	for spec, want := range tests {
		t.Run("should strip "+spec, func(t *testing.T) {
			t.Parallel()

			// given / when
			got := nodejs.StripVersion(spec)

			// then
			assert.Equal(t, want, got)
		})
	}
}
