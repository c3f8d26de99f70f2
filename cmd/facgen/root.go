package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilitymap/internal/config"
	"github.com/gyeh/facilitymap/internal/exitcode"
)

var cfg config.Config

var configFile string

var rootCmd = &cobra.Command{
	Use:   "facgen",
	Short: "Health facility registry → map artifact generator",
	Long:  "Normalizes monthly national registry snapshots into per-region JSON artifacts and bulk-loads them into Postgres for the facility map.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&configFile, "config", "", "Path to YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
