package explorer

import (
	"github.com/arthur-debert/actionkit/pkg/assets"
	"github.com/arthur-debert/actionkit/pkg/icons"
	"github.com/arthur-debert/actionkit/pkg/types"
)

// resolveIcon picks the icon for an action. The checks run in a fixed
// order: method badge, plugin asset, database fallback, none.
func resolveIcon(resolver assets.URLResolver, size int, action types.ActionRecord, plugin *types.PluginDescriptor, remoteIcon bool) (icons.Icon, bool) {
	if plugin == nil {
		return icons.Icon{}, false
	}

	if plugin.Type == types.ActionKindAPI && !remoteIcon && !plugin.IsGraphQL() && action.HTTPMethod() != "" {
		return icons.MethodIcon(action.HTTPMethod()), true
	}

	if plugin.HasIcon() {
		src := plugin.IconLocation
		if resolver != nil {
			src = resolver.AssetURL(src)
		}
		return icons.EntityIcon(src, size), true
	}

	if plugin.Type == types.ActionKindDB {
		return icons.DBQueryIcon(), true
	}

	return icons.Icon{}, false
}
