package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stock-backtest",
	Short: "Backtest client for the stock-management platform",
	Long:  "Command-line client for the stock-management platform: run portfolio backtests, browse market scanners and inspect the account portfolio.",
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(backtestCmd)
	rootCmd.AddCommand(scannerCmd)
	rootCmd.AddCommand(portfolioCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(mockServerCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
