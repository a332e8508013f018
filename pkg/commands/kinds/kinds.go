package kinds

import (
	"github.com/arthur-debert/actionkit/pkg/core"
	"github.com/arthur-debert/actionkit/pkg/logging"
	"github.com/arthur-debert/actionkit/pkg/types"
)

// Editor names the editor a kind opens in
const (
	EditorAPI   = "api"
	EditorQuery = "queries"
	EditorSaaS  = "saas"
)

// KindsOptions defines the options for the Kinds command
type KindsOptions struct {
	App *core.App
}

// KindInfo describes how one kind is routed
type KindInfo struct {
	Kind     types.ActionKind `json:"kind"`
	Group    string           `json:"group"`
	GroupKey string           `json:"groupKey"`
	Editor   string           `json:"editor"`
}

// KindsResult lists every kind with its group
type KindsResult struct {
	Kinds []KindInfo `json:"kinds"`
}

// Header implements ui.Tabular
func (r *KindsResult) Header() []string {
	return []string{"KIND", "GROUP", "EDITOR"}
}

// Rows implements ui.Tabular
func (r *KindsResult) Rows() [][]string {
	rows := make([][]string, 0, len(r.Kinds))
	for _, k := range r.Kinds {
		group := k.Group
		if group == "" {
			group = "-"
		}
		rows = append(rows, []string{string(k.Kind), group, k.Editor})
	}
	return rows
}

// Kinds lists the closed kind set with the group covering each kind
func Kinds(opts KindsOptions) (*KindsResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Kinds").Msg("Executing command")

	result := &KindsResult{}
	for _, kind := range types.AllActionKinds() {
		info := KindInfo{Kind: kind, Editor: EditorFor(kind)}
		if g, ok := opts.App.Explorer.LookupGroup(kind); ok {
			info.Group = g.GroupName
			info.GroupKey = g.Key
		}
		result.Kinds = append(result.Kinds, info)
	}

	log.Info().Str("command", "Kinds").Int("kindCount", len(result.Kinds)).Msg("Command finished")
	return result, nil
}

// EditorFor returns the editor an action of kind opens in
func EditorFor(kind types.ActionKind) string {
	switch kind {
	case types.ActionKindSaaS:
		return EditorSaaS
	case types.ActionKindDB, types.ActionKindRemote, types.ActionKindAI, types.ActionKindInternal:
		return EditorQuery
	default:
		return EditorAPI
	}
}
