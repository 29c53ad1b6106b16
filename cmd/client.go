package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"stock-backtest/internal/service"
	"stock-backtest/pkg/utils"
)

var (
	loginEmail    string
	loginPassword string

	registerUsername string
	registerEmail    string
	registerPassword string

	backtestSymbols string
	backtestStart   string
	backtestEnd     string
	backtestCapital string
	backtestTrades  []string

	scannerType      string
	scannerDate      string
	scannerCount     int
	scannerAscending bool
)

// runClient runs one CLI action with signal-aware cancellation and a fully
// wired dependency graph. Ctrl-C aborts the in-flight request.
func runClient(fn func(ctx context.Context, appDep *AppDependency) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		appDep, err := NewAppDependency(ctx)
		if err != nil {
			return err
		}
		defer appDep.Close()

		return fn(ctx, appDep)
	}
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the platform and persist the session",
	RunE: runClient(func(ctx context.Context, appDep *AppDependency) error {
		return appDep.cli.Login(ctx, loginEmail, loginPassword)
	}),
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE: runClient(func(ctx context.Context, appDep *AppDependency) error {
		return appDep.cli.Register(ctx, registerUsername, registerEmail, registerPassword)
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: runClient(func(ctx context.Context, appDep *AppDependency) error {
		return appDep.cli.Logout(ctx)
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: runClient(func(ctx context.Context, appDep *AppDependency) error {
		return appDep.cli.Whoami(ctx)
	}),
}

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Run a backtest over the configured symbols and trades",
	RunE: runClient(func(ctx context.Context, appDep *AppDependency) error {
		form := service.BacktestForm{
			Symbols:        backtestSymbols,
			StartDate:      backtestStart,
			EndDate:        backtestEnd,
			InitialCapital: backtestCapital,
		}
		return appDep.cli.RunBacktest(ctx, form, backtestTrades)
	}),
}

var scannerCmd = &cobra.Command{
	Use:   "scanner",
	Short: "Fetch a market scanner ranking (use --type all for every ranking)",
	RunE: runClient(func(ctx context.Context, appDep *AppDependency) error {
		return appDep.cli.Scanner(ctx, scannerType, scannerDate, scannerCount, scannerAscending)
	}),
}

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Show the account portfolio breakdown",
	RunE: runClient(func(ctx context.Context, appDep *AppDependency) error {
		return appDep.cli.Portfolio(ctx)
	}),
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe the backtest service",
	RunE: runClient(func(ctx context.Context, appDep *AppDependency) error {
		return appDep.cli.Health(ctx)
	}),
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Periodically probe the platform and refresh scanner data",
	RunE: runClient(func(ctx context.Context, appDep *AppDependency) error {
		return appDep.services.SchedulerService.Run(ctx)
	}),
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&registerUsername, "username", "", "display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password (min 8 chars)")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")

	backtestCmd.Flags().StringVar(&backtestSymbols, "symbols", "", "comma-separated symbols, e.g. 2330,0050")
	backtestCmd.Flags().StringVar(&backtestStart, "start", "", "start date (YYYY-MM-DD)")
	backtestCmd.Flags().StringVar(&backtestEnd, "end", "", "end date (YYYY-MM-DD)")
	backtestCmd.Flags().StringVar(&backtestCapital, "capital", "", "initial capital")
	backtestCmd.Flags().StringArrayVar(&backtestTrades, "trade", nil, "trade action as date:symbol:action:shares, repeatable")
	backtestCmd.MarkFlagRequired("symbols")
	backtestCmd.MarkFlagRequired("start")
	backtestCmd.MarkFlagRequired("end")
	backtestCmd.MarkFlagRequired("capital")

	scannerCmd.Flags().StringVar(&scannerType, "type", "all", "scanner type, or all")
	scannerCmd.Flags().StringVar(&scannerDate, "date", utils.Today(), "trading date (YYYY-MM-DD)")
	scannerCmd.Flags().IntVar(&scannerCount, "count", 20, "max rows per ranking")
	scannerCmd.Flags().BoolVar(&scannerAscending, "asc", false, "sort ascending")
}
