package icon_test

import (
	"testing"

	"github.com/arthur-debert/actionkit/pkg/commands/icon"
	"github.com/arthur-debert/actionkit/pkg/config"
	"github.com/arthur-debert/actionkit/pkg/core"
	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/icons"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon(t *testing.T) {
	app, err := core.NewApp(config.Default(), afero.NewMemMapFs())
	require.NoError(t, err)

	tests := []struct {
		name string
		opts icon.IconOptions
		want *icons.Icon
		text string
	}{
		{
			name: "method badge",
			opts: icon.IconOptions{PluginID: "restapi-plugin", Method: "post"},
			want: &icons.Icon{Kind: icons.KindMethod, Method: "POST"},
			text: "POST",
		},
		{
			name: "rest api without method has no icon",
			opts: icon.IconOptions{PluginID: "restapi-plugin"},
			text: "-",
		},
		{
			name: "asset icon on the cdn",
			opts: icon.IconOptions{PluginID: "postgres-plugin"},
			want: &icons.Icon{Kind: icons.KindEntity, Src: "https://assets.appsmith.com/icons/postgres.svg", Size: 16},
			text: "[https://assets.appsmith.com/icons/postgres.svg]",
		},
		{
			name: "database fallback",
			opts: icon.IconOptions{PluginID: "mongo-plugin"},
			want: &icons.Icon{Kind: icons.KindDatabase},
			text: "DB",
		},
		{
			name: "no icon for internal plugin",
			opts: icon.IconOptions{PluginID: "workflows-plugin"},
			text: "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.App = app
			result, err := icon.Icon(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Icon)
			assert.Equal(t, tt.text, result.Rows()[0][2])
		})
	}
}

func TestIcon_Markup(t *testing.T) {
	app, err := core.NewApp(config.Default(), afero.NewMemMapFs())
	require.NoError(t, err)

	result, err := icon.Icon(icon.IconOptions{App: app, PluginID: "restapi-plugin", Method: "GET", Markup: true})
	require.NoError(t, err)
	assert.Contains(t, result.Markup, `data-method="GET"`)
	assert.Equal(t, []string{"PLUGIN", "KIND", "ICON", "MARKUP"}, result.Header())
	assert.Len(t, result.StyledRows()[0], 4)
}

func TestIcon_Airgapped(t *testing.T) {
	cfg := config.Default()
	cfg.Assets.Airgapped = true
	cfg.Assets.LocalPrefix = "/static"
	app, err := core.NewApp(cfg, afero.NewMemMapFs())
	require.NoError(t, err)

	result, err := icon.Icon(icon.IconOptions{App: app, PluginID: "twilio-plugin"})
	require.NoError(t, err)
	require.NotNil(t, result.Icon)
	assert.Equal(t, "/static/integrations/twilio.png", result.Icon.Src)
}

func TestIcon_UnknownPlugin(t *testing.T) {
	app, err := core.NewApp(config.Default(), afero.NewMemMapFs())
	require.NoError(t, err)

	_, err = icon.Icon(icon.IconOptions{App: app, PluginID: "nope"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPluginNotFound))
}
