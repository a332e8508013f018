package importer

import (
	"github.com/arthur-debert/actionkit/pkg/core"
	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/types"
	"github.com/spf13/afero"
)

func readFile(opts ImportOptions) ([]byte, error) {
	if opts.Path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "an export file is required")
	}
	data, err := afero.ReadFile(opts.App.Fs, opts.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrActionsLoad, "cannot read export %s", opts.Path)
	}
	return data, nil
}

func lookupPlugin(app *core.App, kind types.ActionKind, id string) *types.PluginDescriptor {
	if id == "" {
		return nil
	}
	p, ok := app.Catalog.Lookup(kind, id)
	if !ok {
		return nil
	}
	return &p
}
