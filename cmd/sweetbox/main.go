// Package main is the entry point for the sweetbox storefront and its
// command-line shopper.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweetbox",
	Short: "sweetbox - a bakery storefront with a cart",
	Long: `sweetbox serves the SweetBox bakery storefront and lets you shop from
the terminal.

The catalogue comes from a YAML or JSON file, an S3 object or PostgreSQL.
Carts are kept in a key-value store: in memory, in a local directory or in
PostgreSQL. Environment variables configure everything; the flags below
override the most common settings.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	flagCatalog    string
	flagStorage    string
	flagStorageDir string
	flagLogLevel   string
)

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("sweetbox version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagCatalog, "catalog", "", "catalogue document path (overrides CATALOG_PATH)")
	pf.StringVar(&flagStorage, "storage", "", "cart storage backend: memory, file or postgres (overrides STORAGE_BACKEND)")
	pf.StringVar(&flagStorageDir, "storage-dir", "", "directory for the file storage backend (overrides STORAGE_DIR)")
	pf.StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
}
