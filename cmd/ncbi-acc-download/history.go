// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pythseq/ncbi-acc-download/internal/ledger"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent downloads recorded in the ledger",
	Long: `History lists the most recent entries in the download ledger, newest
first. The ledger only exists when download runs were given a --ledger file;
it records outcomes and never influences later downloads.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("ledger", "", "SQLite ledger file to read")
	historyCmd.Flags().Int("limit", 20, "maximum number of entries to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := stringSetting(cmd, "ledger")
	if path == "" {
		return fmt.Errorf("no ledger configured (use --ledger or set ledger in the config file)")
	}
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := ledger.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "ledger is empty")
		return nil
	}

	w := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %-6s  %s (%s)", e.Timestamp.Format(time.RFC3339), e.Status, e.Accession, e.Molecule)
		if e.File != "" {
			fmt.Fprintf(w, " -> %s", e.File)
		}
		fmt.Fprintln(w)
		if e.Message != "" {
			fmt.Fprintf(w, "        %s\n", e.Message)
		}
	}
	return nil
}
