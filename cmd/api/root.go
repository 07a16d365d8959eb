package main

import (
	"github.com/spf13/cobra"

	"alfredoptarigan/career-gateway/internal/config"
)

const (
	app = "career-gateway"
)

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "career-gateway forwards resume, recommendation and placement requests to the prediction services",
	// Running the bare binary starts the server.
	RunE: runServe,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("port", "p", "", "listen port (overrides PORT)")
}

// loadConfig reads .env and the environment, then applies command line
// overrides for flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Load()
	flags := cmd.Flags()

	if flags.Changed("debug") {
		debug, err := flags.GetBool("debug")
		if err != nil {
			return nil, err
		}
		cfg.Log.Debug = debug
	}

	if flags.Changed("json") {
		json, err := flags.GetBool("json")
		if err != nil {
			return nil, err
		}
		cfg.Log.JSON = json
	}

	if flags.Changed("port") {
		port, err := flags.GetString("port")
		if err != nil {
			return nil, err
		}
		cfg.Server.Port = port
	}

	return cfg, nil
}
