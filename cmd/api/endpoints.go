package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"alfredoptarigan/career-gateway/internal/services"
)

var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "Print the resolved downstream service locations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SERVICE\tCONFIGURED\tBASE URL")
		for _, target := range services.NewEndpointResolver(cfg.Services).Targets() {
			configured := target.ConfiguredValue
			if configured == "" {
				configured = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", target.Name, configured, target.BaseURL)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(endpointsCmd)
}
