package listplugins

import (
	"github.com/arthur-debert/actionkit/pkg/core"
	"github.com/arthur-debert/actionkit/pkg/logging"
	"github.com/arthur-debert/actionkit/pkg/types"
)

// ListPluginsOptions defines the options for the ListPlugins command
type ListPluginsOptions struct {
	App *core.App
	// Kind restricts the listing to one kind when set
	Kind types.ActionKind
}

// PluginInfo is a catalog entry with its resolved icon URL
type PluginInfo struct {
	types.PluginDescriptor
	IconURL string `json:"iconUrl,omitempty"`
}

// ListPluginsResult lists catalog entries
type ListPluginsResult struct {
	Plugins []PluginInfo `json:"plugins"`
}

// Header implements ui.Tabular
func (r *ListPluginsResult) Header() []string {
	return []string{"ID", "NAME", "TYPE", "ICON"}
}

// Rows implements ui.Tabular
func (r *ListPluginsResult) Rows() [][]string {
	rows := make([][]string, 0, len(r.Plugins))
	for _, p := range r.Plugins {
		icon := p.IconURL
		if icon == "" {
			icon = "-"
		}
		rows = append(rows, []string{p.ID, p.Name, string(p.Type), icon})
	}
	return rows
}

// ListPlugins lists the plugin catalog
func ListPlugins(opts ListPluginsOptions) (*ListPluginsResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ListPlugins").Msg("Executing command")

	result := &ListPluginsResult{}
	for _, p := range opts.App.Catalog.All() {
		if opts.Kind != "" && p.Type != opts.Kind {
			continue
		}
		info := PluginInfo{PluginDescriptor: p}
		if p.HasIcon() {
			info.IconURL = opts.App.Assets.AssetURL(p.IconLocation)
		}
		result.Plugins = append(result.Plugins, info)
	}

	log.Info().Str("command", "ListPlugins").Int("pluginCount", len(result.Plugins)).Msg("Command finished")
	return result, nil
}
