package actionkit

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/actionkit/cmd/actionkit/commands/icon"
	"github.com/arthur-debert/actionkit/cmd/actionkit/commands/importcmd"
	"github.com/arthur-debert/actionkit/cmd/actionkit/commands/kinds"
	"github.com/arthur-debert/actionkit/cmd/actionkit/commands/name"
	"github.com/arthur-debert/actionkit/cmd/actionkit/commands/plugins"
	"github.com/arthur-debert/actionkit/cmd/actionkit/commands/route"
	"github.com/arthur-debert/actionkit/cmd/actionkit/commands/topics"
	"github.com/arthur-debert/actionkit/cmd/actionkit/commands/validate"
	"github.com/arthur-debert/actionkit/internal/version"
	iconcmd "github.com/arthur-debert/actionkit/pkg/commands/icon"
	"github.com/arthur-debert/actionkit/pkg/commands/importer"
	kindscmd "github.com/arthur-debert/actionkit/pkg/commands/kinds"
	"github.com/arthur-debert/actionkit/pkg/commands/listplugins"
	namecmd "github.com/arthur-debert/actionkit/pkg/commands/name"
	routecmd "github.com/arthur-debert/actionkit/pkg/commands/route"
	validatecmd "github.com/arthur-debert/actionkit/pkg/commands/validate"
	"github.com/arthur-debert/actionkit/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// kindCompletion completes action kinds
func kindCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, kind := range types.AllActionKinds() {
		names = append(names, kind.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// pluginCompletion completes the single plugin id argument
func pluginCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return pluginFlagCompletion(cmd, args, toComplete)
}

// pluginFlagCompletion completes plugin ids from the catalog
func pluginFlagCompletion(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	app, err := newApp()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var ids []string
	for _, id := range app.Catalog.IDs() {
		if strings.HasPrefix(id, toComplete) {
			ids = append(ids, id)
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func newKindsCmd() *cobra.Command {
	cmd := kinds.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		result, err := kindscmd.Kinds(kindscmd.KindsOptions{App: app})
		if err != nil {
			return err
		}
		return render(cmd, result)
	}
	return cmd
}

func newRouteCmd() *cobra.Command {
	cmd := route.NewCommand()
	cmd.ValidArgsFunction = kindCompletion
	_ = cmd.RegisterFlagCompletionFunc("plugin", pluginFlagCompletion)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		pluginID, _ := cmd.Flags().GetString("plugin")

		app, err := newApp()
		if err != nil {
			return err
		}

		log.Info().
			Str("kind", args[0]).
			Str("page", args[1]).
			Str("action", args[2]).
			Msg("Resolving editor route")

		result, err := routecmd.Route(routecmd.RouteOptions{
			App:      app,
			Kind:     args[0],
			PageID:   args[1],
			ActionID: args[2],
			PluginID: pluginID,
		})
		if err != nil {
			return err
		}
		return render(cmd, result)
	}
	return cmd
}

func newIconCmd() *cobra.Command {
	cmd := icon.NewCommand()
	cmd.ValidArgsFunction = pluginCompletion
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		method, _ := cmd.Flags().GetString("method")
		remoteIcon, _ := cmd.Flags().GetBool("remote-icon")
		markup, _ := cmd.Flags().GetBool("markup")

		app, err := newApp()
		if err != nil {
			return err
		}

		result, err := iconcmd.Icon(iconcmd.IconOptions{
			App:        app,
			PluginID:   args[0],
			Method:     method,
			RemoteIcon: remoteIcon,
			Markup:     markup,
		})
		if err != nil {
			return err
		}
		if result.Icon == nil {
			return renderMessage(cmd, fmt.Sprintf(MsgNoIcon, result.PluginID))
		}
		return render(cmd, result)
	}
	return cmd
}

func newPluginsCmd() *cobra.Command {
	cmd := plugins.NewCommand()
	_ = cmd.RegisterFlagCompletionFunc("kind", kindCompletion)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		kindFlag, _ := cmd.Flags().GetString("kind")

		var kind types.ActionKind
		if kindFlag != "" {
			parsed, err := types.ParseActionKind(kindFlag)
			if err != nil {
				return err
			}
			kind = parsed
		}

		app, err := newApp()
		if err != nil {
			return err
		}

		result, err := listplugins.ListPlugins(listplugins.ListPluginsOptions{App: app, Kind: kind})
		if err != nil {
			return err
		}
		if len(result.Plugins) == 0 {
			return renderMessage(cmd, MsgNoPlugins)
		}
		return render(cmd, result)
	}
	return cmd
}

func newValidateCmd() *cobra.Command {
	cmd := validate.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		result, err := validatecmd.Validate(validatecmd.ValidateOptions{App: app})
		if err != nil {
			return err
		}
		return render(cmd, result)
	}
	return cmd
}

func newNameCmd() *cobra.Command {
	cmd := name.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		pageID, _ := cmd.Flags().GetString("page")
		actionsFile, _ := cmd.Flags().GetString("actions")
		isCopy, _ := cmd.Flags().GetBool("copy")

		app, err := newApp()
		if err != nil {
			return err
		}

		result, err := namecmd.ResolveName(namecmd.NameOptions{
			App:         app,
			ActionsFile: actionsFile,
			Desired:     args[0],
			PageID:      pageID,
			IsCopy:      isCopy,
		})
		if err != nil {
			return err
		}
		return render(cmd, result)
	}
	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := importcmd.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defaultPage, _ := cmd.Flags().GetString("default-page")
		renames, _ := cmd.Flags().GetStringToString("rename")

		app, err := newApp()
		if err != nil {
			return err
		}

		log.Info().Str("path", args[0]).Int("renames", len(renames)).Msg("Importing application export")

		result, err := importer.Import(importer.ImportOptions{
			App:           app,
			Path:          args[0],
			DefaultPageID: defaultPage,
			Renames:       renames,
		})
		if err != nil {
			return err
		}
		return render(cmd, result)
	}
	return cmd
}

func newTopicsCmd() *cobra.Command {
	cmd := topics.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Name() == "help" {
			helpCmd.SetOut(cmd.OutOrStdout())
			if helpCmd.RunE != nil {
				return helpCmd.RunE(helpCmd, []string{"topics"})
			} else if helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
		}
		return fmt.Errorf(MsgErrHelpCmd)
	}
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "actionkit %s\n", version.String())
			return err
		},
	}
}
