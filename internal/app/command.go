package app

import (
	"os"

	"drone-viewer/internal/config"
	renderer "drone-viewer/internal/graphics/renderer"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Factory builds the renderables of a binary once the framebuffer size is known
type Factory func(cfg *config.Config, width, height int) []renderer.Renderable

// NewCommand returns a root command that loads the config, sets up logging and runs the window
func NewCommand(use, short string, build Factory) *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if err := config.SetupLogging(os.Stderr, cfg.Log.Level); err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"config": configPath,
				"level":  cfg.Log.Level,
			}).Debug("configuration loaded")

			return Run(cfg, func(width, height int) []renderer.Renderable {
				return build(cfg, width, height)
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (missing file means defaults)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	return cmd
}

// Main executes the command and exits non-zero on error
func Main(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		log.WithError(err).Error(cmd.Name() + " failed")
		os.Exit(1)
	}
}
