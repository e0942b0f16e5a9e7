// Package cmd implements the sellerdash service commands.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sellerdash",
	Short: "Proxy service for Amazon Selling Partner API dashboards",
	Long: "sellerdash exposes seller data (orders, inventory, reports, finances,\n" +
		"shipments) through authenticated proxy endpoints, handling LWA token\n" +
		"refresh, SigV4 signing, and per-category SP-API rate limits.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
