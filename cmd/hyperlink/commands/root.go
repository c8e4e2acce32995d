package commands

import (
	"github.com/spf13/cobra"

	"hyperlink/internal/app"
)

var (
	configPath string
	origin     string
	password   string
	verbose    bool
	jsonOut    bool
	appCtx     *app.Wire
)

// Execute runs the CLI against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	configPath, origin, password = "", "", ""
	verbose, jsonOut = false, false
	appCtx = nil

	root := &cobra.Command{
		Use:          "hyperlink",
		Short:        "Create and recover keypair claim links",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if origin != "" {
				cfg.Origin = origin
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&origin, "origin", "", "link origin (overrides config and "+app.OriginEnv+")")
	root.PersistentFlags().StringVarP(&password, "password", "p", "", "password for version 2 links")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")

	root.AddCommand(createCmd(), recoverCmd(), versionsCmd())
	return root
}
