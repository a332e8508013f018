package explorer

import (
	"github.com/arthur-debert/actionkit/pkg/routes"
	"github.com/arthur-debert/actionkit/pkg/types"
)

// SaaSConnectorPackage is the only SaaS connector the SaaS editor route
// knows about. Every SAAS action is routed to it, whatever its plugin.
// Supporting a second connector means changing ResolveActionURL.
const SaaSConnectorPackage = types.PackageGoogleSheets

// ResolveActionURLProps are the inputs of ResolveActionURL
type ResolveActionURLProps struct {
	Plugin         *types.PluginDescriptor
	ParentEntityID string
	PluginType     types.ActionKind
	ID             string
}

// ResolveActionURL returns the editor path for an action
func ResolveActionURL(b *routes.Builder, props ResolveActionURLProps) string {
	switch props.PluginType {
	case types.ActionKindSaaS:
		return b.SaaSEditorAPIIDURL(props.ParentEntityID, SaaSConnectorPackage, props.ID)
	case types.ActionKindDB, types.ActionKindRemote, types.ActionKindAI, types.ActionKindInternal:
		return b.QueryEditorIDURL(props.ParentEntityID, props.ID)
	default:
		return b.APIEditorIDURL(props.ParentEntityID, props.ID)
	}
}
