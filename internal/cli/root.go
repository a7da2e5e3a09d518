// Package cli implements the command-line interface for rubikscan.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rubikscan/rubikscan/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubikscan",
	Short: "Rubik's cube state tracker",
	Long: `rubikscan - A CLI tool for modeling Rubik's cube states.

Scramble cubes reproducibly, replay move sequences, enter scanned face
colors, and export the 54-facelet string consumed by external solvers.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rubikscan/rubikscan.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the history database from the --db flag or the default
// path and applies pending migrations.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error

	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
