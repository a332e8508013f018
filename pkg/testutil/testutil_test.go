package testutil

import (
	"testing"

	"github.com/arthur-debert/actionkit/pkg/actions"
	"github.com/arthur-debert/actionkit/pkg/config"
	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFileTree(t *testing.T) {
	env := NewTestEnvironment(t).WithFileTree("/work", FileTree{
		"actions.yaml": "actions: []\n",
		"exports": FileTree{
			"app.json": "{}",
		},
	})

	data, err := afero.ReadFile(env.FS, "/work/exports/app.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	exists, err := afero.Exists(env.FS, "/work/actions.yaml")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestApp(t *testing.T) {
	app := NewTestEnvironment(t).
		WithConfig(func(cfg *config.Config) { cfg.Routes.BasePath = "/studio" }).
		App()

	assert.Equal(t, "/studio", app.Routes.BasePath())
	assert.Greater(t, app.Catalog.Len(), 0)
}

func TestActionsYAML_RoundTrip(t *testing.T) {
	records := []types.ActionRecord{
		Action("1", "Query1", "page-A", types.ActionKindDB),
		Action("2", "Api1", "page-B", types.ActionKindAPI),
	}
	env := NewTestEnvironment(t).WithFileTree("/", FileTree{
		"actions.yaml": ActionsYAML(t, records...),
	})

	loaded, err := actions.LoadFile(env.FS, "/actions.yaml")
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestAssertErrorCode(t *testing.T) {
	AssertErrorCode(t, errors.New(errors.ErrNameExhausted, "full"), errors.ErrNameExhausted)
	AssertErrorCode(t, errors.Wrap(errors.New(errors.ErrNotFound, "x"), errors.ErrActionsLoad, "wrapped"), errors.ErrActionsLoad)
}
