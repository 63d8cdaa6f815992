package serve

import (
	"github.com/colstore/colstore/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
	"time"
)

var (
	serveCmdConfig *config.Config
	ServeCmd       = &cobra.Command{
		Use:   "serve",
		Short: "Start the colstore server",
		Long: `Start the colstore server with the specified configuration. The configuration can be set via
command line flags, environment variables or a .env file. The format of the environment variables
is COLSTORE_<flag> (e.g. COLSTORE_MAX_VERSIONS=5)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	config.RegisterFlags(ServeCmd.PersistentFlags())
}

// processConfig reads the command line flags and environment variables into the server
// configuration and sets up logging.
func processConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetViper(), cmd.Flags())
	if err != nil {
		return err
	}
	serveCmdConfig = cfg

	setupLogger(cfg.LogLevel)
	return nil
}

func run(cmd *cobra.Command, _ []string) error {
	application, err := initialize(serveCmdConfig)
	if err != nil {
		return err
	}
	return application.Run(cmd.Context())
}

func setupLogger(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
