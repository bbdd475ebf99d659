package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of ncbi-acc-download",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ncbi-acc-download %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
