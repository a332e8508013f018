package actionkit

import (
	"fmt"

	"github.com/arthur-debert/actionkit/pkg/config"
	"github.com/arthur-debert/actionkit/pkg/core"
	"github.com/arthur-debert/actionkit/pkg/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// newApp assembles the catalog, routes and explorer groups from the loaded
// configuration
func newApp() (*core.App, error) {
	app, err := core.NewApp(config.Get(), afero.NewOsFs())
	if err != nil {
		return nil, fmt.Errorf(MsgErrBuildApp, err)
	}
	return app, nil
}

// newRenderer returns the renderer selected by --format, writing to the
// command's output
func newRenderer(cmd *cobra.Command) (ui.Renderer, error) {
	name, _ := cmd.Flags().GetString("format")
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// render writes result in the selected format
func render(cmd *cobra.Command, result interface{}) error {
	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

// renderMessage writes a plain message in the selected format
func renderMessage(cmd *cobra.Command, msg string) error {
	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.RenderMessage(msg)
}

// formatCompletion completes --format values
func formatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
}
