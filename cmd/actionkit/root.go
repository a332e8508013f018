package actionkit

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/actionkit/internal/version"
	"github.com/arthur-debert/actionkit/pkg/cobrax/topics"
	"github.com/arthur-debert/actionkit/pkg/config"
	"github.com/arthur-debert/actionkit/pkg/core"
	"github.com/arthur-debert/actionkit/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
		overrides  map[string]string
	)

	rootCmd := &cobra.Command{
		Use:     "actionkit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			opts := config.LoadOptions{ConfigFile: configFile}
			if len(overrides) > 0 {
				opts.Overrides = make(map[string]interface{}, len(overrides))
				for k, v := range overrides {
					opts.Overrides[k] = v
				}
			}
			if err := core.Initialize(opts); err != nil {
				return fmt.Errorf(MsgErrInitConfig, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringToStringVar(&overrides, "set", nil, MsgFlagSet)
	rootCmd.PersistentFlags().StringP("format", "f", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", formatCompletion)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "explorer",
		Title: "EXPLORER:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "naming",
		Title: "NAMING:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newKindsCmd())
	rootCmd.AddCommand(newRouteCmd())
	rootCmd.AddCommand(newIconCmd())
	rootCmd.AddCommand(newPluginsCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newNameCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	installTopics(rootCmd)

	return rootCmd
}

// installTopics serves the embedded topics through the help command
func installTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	manager, err := topics.Load(sub, topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	manager.Install(rootCmd)
}
