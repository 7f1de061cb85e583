package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmpaz/wl-color-picker/internal/db"
)

var (
	cleanupOlderThan time.Duration
	cleanupKeep      int
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Prune old history records",
	Run:   runCleanup,
}

func init() {
	cleanupCmd.Flags().DurationVar(&cleanupOlderThan, "older-than", 720*time.Hour, "Remove picks older than this (0 disables age pruning)")
	cleanupCmd.Flags().IntVar(&cleanupKeep, "keep", 0, "Keep at most this many newest picks (0 disables count pruning)")
	rootCmd.AddCommand(cleanupCmd)
}

func runCleanup(cmd *cobra.Command, args []string) {
	path, err := storePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store, err := db.New(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing DB: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	removed, err := store.Prune(cleanupOlderThan, cleanupKeep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error pruning history: %v\n", err)
		os.Exit(1)
	}

	if removed == 0 {
		fmt.Println("History is clean. Nothing to prune.")
	} else {
		fmt.Printf("Removed %d records.\n", removed)
	}
}
