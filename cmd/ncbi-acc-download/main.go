// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ncbi-acc-download CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pythseq/ncbi-acc-download/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir is where NCBI credentials are looked up at startup.
const secretsDir = ".secrets/"

// loadedCredentials holds credentials loaded from the secrets directory.
var loadedCredentials secrets.Credentials

// rootCmd is the base command for the ncbi-acc-download CLI.
var rootCmd = &cobra.Command{
	Use:   "ncbi-acc-download",
	Short: "Download sequence records from NCBI by accession",
	Long: `ncbi-acc-download fetches nucleotide or protein records from the NCBI
Entrez efetch service by accession number and writes each one to a local
file. Downloads are streamed to disk, scanned for the service's textual
error markers, and can optionally be validated as parseable GenBank or
FASTA data.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		creds, err := secrets.LoadCredentials(secretsDir)
		if err != nil {
			return err
		}
		loadedCredentials = creds
		if creds.APIKey != "" || creds.Email != "" {
			fmt.Fprintln(os.Stderr, "Loaded NCBI credentials from", secretsDir)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ncbi-acc-download.yaml or ~/.config/ncbi-acc-download/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ncbi-acc-download")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ncbi-acc-download"))
		}
	}

	viper.SetEnvPrefix("NCBI_ACC_DOWNLOAD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a flag against the config file and environment: an
// explicit command-line flag wins, then a viper setting, then the flag's
// default value.
func stringSetting(cmd *cobra.Command, name string) string {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetString(name)
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

func durationSetting(cmd *cobra.Command, name string) time.Duration {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetDuration(name)
	}
	v, _ := cmd.Flags().GetDuration(name)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
