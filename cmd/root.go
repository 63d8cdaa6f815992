package cmd

import (
	"fmt"
	"github.com/colstore/colstore/cmd/query"
	"github.com/colstore/colstore/cmd/serve"
	"github.com/colstore/colstore/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
)

const (
	Version = "0.1.0"
)

var (
	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "colstore",
		Short: "versioned column-family store",
		Long: fmt.Sprintf(`colstore (v%s)

An in-memory wide-column store keeping the newest versions of every row,
served over a text protocol, gRPC and a change-data-capture stream.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of colstore",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("colstore v%s\n", Version)
		},
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(initConfig)

	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(query.QueryCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig reads in .env files and ENV variables if set.
func initConfig() {
	config.LoadEnv(viper.GetViper())
}
