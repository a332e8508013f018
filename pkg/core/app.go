package core

import (
	"github.com/arthur-debert/actionkit/pkg/assets"
	"github.com/arthur-debert/actionkit/pkg/config"
	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/explorer"
	"github.com/arthur-debert/actionkit/pkg/logging"
	"github.com/arthur-debert/actionkit/pkg/naming"
	"github.com/arthur-debert/actionkit/pkg/plugins"
	"github.com/arthur-debert/actionkit/pkg/routes"
	"github.com/spf13/afero"
)

// App holds the collaborators shared by all commands
type App struct {
	Config   *config.Config
	Fs       afero.Fs
	Catalog  *plugins.Catalog
	Assets   *assets.Resolver
	Routes   *routes.Builder
	Explorer *explorer.Map
}

// NewApp builds an App from cfg. Extra plugins named by plugins.file are
// read from fs.
func NewApp(cfg *config.Config, fs afero.Fs) (*App, error) {
	logger := logging.GetLogger("core.app")

	if cfg == nil {
		cfg = config.Get()
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}

	catalog, err := plugins.Builtin()
	if err != nil {
		return nil, err
	}
	if cfg.Plugins.File != "" {
		if err := catalog.LoadFile(fs, cfg.Plugins.File); err != nil {
			return nil, err
		}
	}

	resolver := assets.NewResolver(cfg.Assets)
	builder := routes.NewBuilder(cfg.Routes.BasePath)

	table, err := explorer.New(explorer.Options{
		Routes:   builder,
		Assets:   resolver,
		IconSize: cfg.Icons.EntitySize,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "invalid action group table")
	}

	logger.Debug().
		Int("plugins", catalog.Len()).
		Int("groups", len(table.Groups())).
		Str("basePath", builder.BasePath()).
		Msg("Application assembled")

	return &App{
		Config:   cfg,
		Fs:       fs,
		Catalog:  catalog,
		Assets:   resolver,
		Routes:   builder,
		Explorer: table,
	}, nil
}

// NamingOptions returns the name generator options from the configuration
func (a *App) NamingOptions() naming.Options {
	return naming.Options{
		CopySuffix: a.Config.Naming.CopySuffix,
		MaxSuffix:  a.Config.Naming.MaxSuffix,
	}
}
