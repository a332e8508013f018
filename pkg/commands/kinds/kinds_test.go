package kinds_test

import (
	"testing"

	"github.com/arthur-debert/actionkit/pkg/commands/kinds"
	"github.com/arthur-debert/actionkit/pkg/config"
	"github.com/arthur-debert/actionkit/pkg/core"
	"github.com/arthur-debert/actionkit/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	app, err := core.NewApp(config.Default(), afero.NewMemMapFs())
	require.NoError(t, err)

	result, err := kinds.Kinds(kinds.KindsOptions{App: app})
	require.NoError(t, err)
	require.Len(t, result.Kinds, len(types.AllActionKinds()))

	editors := map[types.ActionKind]string{}
	for _, k := range result.Kinds {
		assert.Equal(t, "Datasources", k.Group)
		assert.NotEmpty(t, k.GroupKey)
		editors[k.Kind] = k.Editor
	}
	assert.Equal(t, kinds.EditorAPI, editors[types.ActionKindAPI])
	assert.Equal(t, kinds.EditorSaaS, editors[types.ActionKindSaaS])
	assert.Equal(t, kinds.EditorQuery, editors[types.ActionKindAI])

	assert.Equal(t, []string{"KIND", "GROUP", "EDITOR"}, result.Header())
	assert.Equal(t, []string{"API", "Datasources", "api"}, result.Rows()[0])
}
