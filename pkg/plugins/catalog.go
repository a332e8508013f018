// Package plugins holds the catalog of connectors that back actions.
package plugins

import (
	_ "embed"

	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/logging"
	"github.com/arthur-debert/actionkit/pkg/registry"
	"github.com/arthur-debert/actionkit/pkg/types"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed plugins.yaml
var builtinCatalog []byte

// catalogFile is the on-disk layout of a plugin catalog
type catalogFile struct {
	Plugins []types.PluginDescriptor `yaml:"plugins"`
}

// Catalog stores plugin descriptors by id
type Catalog struct {
	reg registry.Registry[types.PluginDescriptor]
}

// NewCatalog returns an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{reg: registry.New[types.PluginDescriptor]()}
}

// Builtin returns a catalog preloaded with the built-in plugins
func Builtin() (*Catalog, error) {
	c := NewCatalog()
	if err := c.LoadData(builtinCatalog); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "built-in plugin catalog is invalid")
	}
	return c, nil
}

// Add registers a descriptor, replacing one with the same id
func (c *Catalog) Add(p types.PluginDescriptor) error {
	if err := validate(p); err != nil {
		return err
	}
	return c.reg.Upsert(p.ID, p)
}

// LoadData merges a YAML catalog document into c
func (c *Catalog) LoadData(data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.Wrap(err, errors.ErrPluginInvalid, "cannot parse plugin catalog")
	}
	for i, p := range file.Plugins {
		if err := c.Add(p); err != nil {
			return errors.Wrapf(err, errors.ErrPluginInvalid, "plugin entry %d", i)
		}
	}
	return nil
}

// LoadFile merges the YAML catalog at path into c
func (c *Catalog) LoadFile(fs afero.Fs, path string) error {
	logger := logging.GetLogger("plugins")
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrPluginInvalid, "cannot read plugin catalog %s", path)
	}
	if err := c.LoadData(data); err != nil {
		return err
	}
	logger.Debug().Str("path", path).Int("plugins", c.reg.Count()).Msg("Loaded plugin catalog")
	return nil
}

// Lookup returns the plugin with id if it is of the given kind
func (c *Catalog) Lookup(kind types.ActionKind, id string) (types.PluginDescriptor, bool) {
	p, ok := c.reg.Lookup(id)
	if !ok || p.Type != kind {
		return types.PluginDescriptor{}, false
	}
	return p, true
}

// Get returns the plugin with id, whatever its kind
func (c *Catalog) Get(id string) (types.PluginDescriptor, error) {
	p, err := c.reg.Get(id)
	if err != nil {
		return types.PluginDescriptor{}, errors.Wrapf(err, errors.ErrPluginNotFound, "plugin %q not found", id)
	}
	return p, nil
}

// GetKind returns the plugin with id and checks it serves kind
func (c *Catalog) GetKind(kind types.ActionKind, id string) (types.PluginDescriptor, error) {
	p, err := c.Get(id)
	if err != nil {
		return p, err
	}
	if p.Type != kind {
		return types.PluginDescriptor{}, errors.Newf(errors.ErrPluginKindMismatch,
			"plugin %q serves %s actions, not %s", id, p.Type, kind).
			WithDetails(map[string]interface{}{"id": id, "want": kind, "got": p.Type})
	}
	return p, nil
}

// All returns every plugin in registration order
func (c *Catalog) All() []types.PluginDescriptor {
	return c.reg.Values()
}

// IDs returns every plugin id in sorted order
func (c *Catalog) IDs() []string {
	return c.reg.List()
}

// Len returns the number of plugins
func (c *Catalog) Len() int {
	return c.reg.Count()
}

func validate(p types.PluginDescriptor) error {
	if p.ID == "" {
		return errors.New(errors.ErrPluginInvalid, "plugin id is required")
	}
	if !p.Type.IsValid() {
		return errors.Newf(errors.ErrPluginInvalid, "plugin %q has unknown type %q", p.ID, p.Type).
			WithDetail("id", p.ID)
	}
	return nil
}
