package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/blink-button/internal/config"
	"github.com/oshokin/blink-button/internal/service/blinker"
	"github.com/oshokin/blink-button/internal/version"
)

var (
	// configPath to the configuration YAML file; empty means defaults.
	configPath string
	// backend overrides the backend selected by the configuration.
	backend string

	// rootCmd represents the base command running the blink tutorial.
	rootCmd = &cobra.Command{
		Use:   "blink-button",
		Short: "Run the button-controlled LED blink tutorial.",
		Long: `Runs the scheduler tutorial: two buttons and one LED.

The start button begins toggling the LED every 500 ms via a repeating timer,
the stop button halts it. Each handler logs whether it executed in
thread/main or interrupt handler mode.

Without a settings file the simulator backend is used: type 1 (start) or
2 (stop) followed by Enter to press the buttons. On Linux the gpiocdev and
rpio backends drive real pins per the configured line mapping. The program
runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return blinker.Run(ctx, &blinker.Options{
				ConfigPath: configPath,
				Backend:    backend,
				Input:      os.Stdin,
			})
		},
	}
)

// Execute runs the blink-button CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)
	attachInitCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// attachInitCommand adds an `init` subcommand that writes the default
// settings file next to the binary as a starting point for hardware
// setups.
func attachInitCommand(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a default settings file.",
		Long: `Writes the built-in default settings (simulator backend, nRF52 DK pin
mapping, 500 ms blink period) to the given path, or to ` + config.DefaultConfigFilename + `
in the current directory. Edit the backend and line offsets to match your board.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigFilename
			if len(args) > 0 {
				path = args[0]
			}

			if err := config.Save(path, config.Default()); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default settings to %s\n", path)

			return nil
		},
	})
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to configuration file (default: built-in settings)")
	rootCmd.Flags().StringVarP(&backend, "backend", "b", "", "override GPIO backend: sim, gpiocdev or rpio")
}
