package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/streetdivider/internal/config"
	"github.com/streetdivider/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := config.Load()
	if err := newRootCmd(&settings).ExecuteContext(ctx); err != nil {
		logger.Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd wires every subcommand to the shared settings. Flags override
// the values loaded from the environment.
func newRootCmd(settings *config.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "streetdivider",
		Short: "Split German street lines into street, house number and affix",
		Long: `Streetdivider splits address lines such as "Bundesstraße 2 Nr. 25a" into
street name, house number and house number affix. Special streets whose names
contain digits are recognised from a dictionary.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(settings.LogLevel, settings.LogJSON)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&settings.LogLevel, "log-level", settings.LogLevel, "log level (debug, info, warn, error, disabled)")
	flags.BoolVar(&settings.LogJSON, "log-json", settings.LogJSON, "log as JSON")
	flags.StringVar(&settings.DictSource, "dict-source", settings.DictSource, "special streets: embedded, db or file:<path>")
	flags.StringVar(&settings.DictEncoding, "dict-encoding", settings.DictEncoding, "text encoding of a file:<path> dictionary")

	rootCmd.AddCommand(createDemoCmd(settings))
	rootCmd.AddCommand(createParseCmd(settings))
	rootCmd.AddCommand(createBatchCmd(settings))
	rootCmd.AddCommand(createServeCmd(settings))
	rootCmd.AddCommand(createStreetsCmd(settings))

	return rootCmd
}
