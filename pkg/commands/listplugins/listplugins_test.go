package listplugins_test

import (
	"testing"

	"github.com/arthur-debert/actionkit/pkg/commands/listplugins"
	"github.com/arthur-debert/actionkit/pkg/config"
	"github.com/arthur-debert/actionkit/pkg/core"
	"github.com/arthur-debert/actionkit/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPlugins(t *testing.T) {
	app, err := core.NewApp(config.Default(), afero.NewMemMapFs())
	require.NoError(t, err)

	all, err := listplugins.ListPlugins(listplugins.ListPluginsOptions{App: app})
	require.NoError(t, err)
	assert.Equal(t, app.Catalog.Len(), len(all.Plugins))

	dbs, err := listplugins.ListPlugins(listplugins.ListPluginsOptions{App: app, Kind: types.ActionKindDB})
	require.NoError(t, err)
	require.Len(t, dbs.Plugins, 3)
	assert.Equal(t, "https://assets.appsmith.com/icons/postgres.svg", dbs.Plugins[0].IconURL)

	rows := dbs.Rows()
	assert.Equal(t, []string{"mongo-plugin", "MongoDB", "DB", "-"}, rows[2])
}
