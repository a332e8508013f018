package explorer

import (
	"github.com/arthur-debert/actionkit/pkg/assets"
	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/icons"
	"github.com/arthur-debert/actionkit/pkg/logging"
	"github.com/arthur-debert/actionkit/pkg/routes"
	"github.com/arthur-debert/actionkit/pkg/types"
	"github.com/google/uuid"
)

// DatasourcesGroup is the name of the group holding every data source kind
const DatasourcesGroup = "Datasources"

// URLFunc builds the editor path of an action
type URLFunc func(parentEntityID, id string, kind types.ActionKind, plugin *types.PluginDescriptor) string

// IconFunc picks the icon of an action. The bool is false when no icon applies.
type IconFunc func(action types.ActionRecord, plugin *types.PluginDescriptor, remoteIcon bool) (icons.Icon, bool)

// GroupConfig describes a group of kinds that share routing and icons
type GroupConfig struct {
	GroupName string
	Types     []types.ActionKind
	Icon      icons.Icon
	Key       string

	getURL  URLFunc
	getIcon IconFunc
}

// NewGroupConfig creates a group with a fresh key
func NewGroupConfig(name string, kinds []types.ActionKind, icon icons.Icon, getURL URLFunc, getIcon IconFunc) *GroupConfig {
	return &GroupConfig{
		GroupName: name,
		Types:     append([]types.ActionKind(nil), kinds...),
		Icon:      icon,
		Key:       uuid.NewString(),
		getURL:    getURL,
		getIcon:   getIcon,
	}
}

// GetURL returns the editor path of an action of this group
func (g *GroupConfig) GetURL(parentEntityID, id string, kind types.ActionKind, plugin *types.PluginDescriptor) string {
	return g.getURL(parentEntityID, id, kind, plugin)
}

// GetIcon returns the icon of an action of this group
func (g *GroupConfig) GetIcon(action types.ActionRecord, plugin *types.PluginDescriptor, remoteIcon bool) (icons.Icon, bool) {
	return g.getIcon(action, plugin, remoteIcon)
}

// Covers reports whether kind belongs to the group
func (g *GroupConfig) Covers(kind types.ActionKind) bool {
	for _, k := range g.Types {
		if k == kind {
			return true
		}
	}
	return false
}

// Options configures the collaborators of the group table
type Options struct {
	Routes   *routes.Builder
	Assets   assets.URLResolver
	IconSize int
}

// Map is the immutable kind to group table
type Map struct {
	groups []*GroupConfig
}

// New builds the group table
func New(opts Options) (*Map, error) {
	if opts.Routes == nil {
		opts.Routes = routes.NewBuilder(routes.DefaultBasePath)
	}
	if opts.IconSize <= 0 {
		opts.IconSize = icons.DefaultEntitySize
	}

	datasources := NewGroupConfig(
		DatasourcesGroup,
		types.AllActionKinds(),
		icons.DBQueryIcon(),
		func(parentEntityID, id string, kind types.ActionKind, plugin *types.PluginDescriptor) string {
			return ResolveActionURL(opts.Routes, ResolveActionURLProps{
				Plugin:         plugin,
				ParentEntityID: parentEntityID,
				PluginType:     kind,
				ID:             id,
			})
		},
		func(action types.ActionRecord, plugin *types.PluginDescriptor, remoteIcon bool) (icons.Icon, bool) {
			return resolveIcon(opts.Assets, opts.IconSize, action, plugin, remoteIcon)
		},
	)

	return NewMap(datasources)
}

// NewMap builds a table from groups and checks that they partition the
// kind set
func NewMap(groups ...*GroupConfig) (*Map, error) {
	m := &Map{groups: groups}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	logger := logging.GetLogger("explorer")
	logger.Trace().Int("groups", len(groups)).Msg("Group table built")
	return m, nil
}

// LookupGroup returns the first group covering kind
func (m *Map) LookupGroup(kind types.ActionKind) (*GroupConfig, bool) {
	for _, g := range m.groups {
		if g.Covers(kind) {
			return g, true
		}
	}
	return nil, false
}

// Groups returns the groups in table order
func (m *Map) Groups() []*GroupConfig {
	return append([]*GroupConfig(nil), m.groups...)
}

// Validate checks that every kind is covered by exactly one group
func (m *Map) Validate() error {
	owner := make(map[types.ActionKind]string)
	for _, g := range m.groups {
		for _, kind := range g.Types {
			if !kind.IsValid() {
				return errors.Newf(errors.ErrInvalidKind, "group %q lists unknown kind %q", g.GroupName, kind).
					WithDetail("group", g.GroupName)
			}
			if prev, ok := owner[kind]; ok {
				return errors.Newf(errors.ErrKindOverlap, "kind %s is covered by both %q and %q", kind, prev, g.GroupName).
					WithDetails(map[string]interface{}{"kind": kind, "groups": []string{prev, g.GroupName}})
			}
			owner[kind] = g.GroupName
		}
	}
	for _, kind := range types.AllActionKinds() {
		if _, ok := owner[kind]; !ok {
			return errors.Newf(errors.ErrKindUncovered, "no group covers kind %s", kind).
				WithDetail("kind", kind)
		}
	}
	return nil
}
