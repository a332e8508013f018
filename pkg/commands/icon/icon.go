package icon

import (
	"github.com/arthur-debert/actionkit/pkg/core"
	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/icons"
	"github.com/arthur-debert/actionkit/pkg/logging"
	"github.com/arthur-debert/actionkit/pkg/types"
)

// IconOptions defines the options for the Icon command
type IconOptions struct {
	App        *core.App
	PluginID   string
	Method     string
	RemoteIcon bool
	Markup     bool
}

// IconResult is the icon picked for an action of a plugin
type IconResult struct {
	PluginID string      `json:"pluginId"`
	Kind     string      `json:"kind"`
	Icon     *icons.Icon `json:"icon"`
	Markup   string      `json:"markup,omitempty"`

	renderer *icons.Renderer
}

// Header implements ui.Tabular
func (r *IconResult) Header() []string {
	if r.Markup != "" {
		return []string{"PLUGIN", "KIND", "ICON", "MARKUP"}
	}
	return []string{"PLUGIN", "KIND", "ICON"}
}

// Rows implements ui.Tabular
func (r *IconResult) Rows() [][]string {
	return [][]string{r.row(r.iconText())}
}

// StyledRows implements ui.Styled
func (r *IconResult) StyledRows() [][]string {
	if r.Icon == nil || r.renderer == nil {
		return r.Rows()
	}
	return [][]string{r.row(r.renderer.Render(*r.Icon))}
}

func (r *IconResult) row(icon string) []string {
	row := []string{r.PluginID, r.Kind, icon}
	if r.Markup != "" {
		row = append(row, r.Markup)
	}
	return row
}

func (r *IconResult) iconText() string {
	if r.Icon == nil {
		return "-"
	}
	return r.Icon.String()
}

// Icon picks the icon shown for an action backed by a plugin
func Icon(opts IconOptions) (*IconResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Icon").Str("plugin", opts.PluginID).Msg("Executing command")

	plugin, err := opts.App.Catalog.Get(opts.PluginID)
	if err != nil {
		return nil, err
	}

	result := &IconResult{PluginID: plugin.ID, Kind: string(plugin.Type)}
	if renderer, err := icons.NewRenderer(); err == nil {
		result.renderer = renderer
	} else {
		log.Warn().Err(err).Msg("Icon styles unavailable")
	}

	group, ok := opts.App.Explorer.LookupGroup(plugin.Type)
	if !ok {
		return result, nil
	}

	action := types.ActionRecord{
		Kind:     plugin.Type,
		PluginID: plugin.ID,
		Config:   types.ActionConfiguration{HTTPMethod: opts.Method},
	}
	picked, ok := group.GetIcon(action, &plugin, opts.RemoteIcon)
	if !ok {
		log.Info().Str("command", "Icon").Msg("No icon applies")
		return result, nil
	}
	result.Icon = &picked

	if opts.Markup {
		markup, err := picked.Markup()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to render icon markup")
		}
		result.Markup = markup
	}

	log.Info().Str("command", "Icon").Str("icon", picked.String()).Msg("Command finished")
	return result, nil
}
