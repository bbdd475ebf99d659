package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pythseq/ncbi-acc-download/internal/entrez"
	"github.com/pythseq/ncbi-acc-download/internal/ledger"
	"github.com/pythseq/ncbi-acc-download/internal/manifest"
	"github.com/pythseq/ncbi-acc-download/internal/seqio"
)

const defaultTimeout = 60 * time.Second

var downloadCmd = &cobra.Command{
	Use:   "download [accessions...]",
	Short: "Download sequence records by accession",
	Long: `Download fetches one or more accessions from the NCBI Entrez efetch
service, writing each record to its own file. Nucleotide records are saved
as GenBank flat files (.gbk), protein records as FASTA (.fa).

Accessions are given as arguments, as a plain text list (one per line), or
as a YAML manifest with optional per-entry output names. Failures do not
stop the batch; the exit status reports whether any accession failed.`,
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringP("molecule", "m", "nucleotide", "molecule type to download (nucleotide or protein)")
	downloadCmd.Flags().StringP("out", "o", "", "output file base name (single accession only; the format extension is appended)")
	downloadCmd.Flags().String("out-dir", "", "directory for generated file names")
	downloadCmd.Flags().StringP("from-file", "F", "", "read accessions from a list file (plain text or YAML manifest)")
	downloadCmd.Flags().StringP("extended-validation", "e", "none", "validate completed downloads (none, loads or checks)")
	downloadCmd.Flags().BoolP("verbose", "v", false, "print a progress dot per downloaded chunk")
	downloadCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	downloadCmd.Flags().Duration("delay", 0, "delay between consecutive downloads")
	downloadCmd.Flags().String("api-key", "", "NCBI API key (overrides config file and secrets)")
	downloadCmd.Flags().String("email", "", "contact email sent with requests")
	downloadCmd.Flags().String("ledger", "", "SQLite ledger file to append outcomes to")
	downloadCmd.Flags().String("report", "", "write a YAML batch report to this file")

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	fromFile, _ := cmd.Flags().GetString("from-file")
	out, _ := cmd.Flags().GetString("out")

	reqs, moleculeOverride, err := assembleRequests(args, fromFile, out)
	if err != nil {
		return err
	}

	moleculeName := stringSetting(cmd, "molecule")
	if moleculeOverride != "" && !cmd.Flags().Changed("molecule") {
		moleculeName = moleculeOverride
	}
	molecule, err := entrez.ParseMolecule(moleculeName)
	if err != nil {
		return err
	}

	validation, err := entrez.ParseValidationMode(stringSetting(cmd, "extended-validation"))
	if err != nil {
		return err
	}

	apiKey := stringSetting(cmd, "api-key")
	if apiKey == "" {
		apiKey = loadedCredentials.APIKey
	}
	email := stringSetting(cmd, "email")
	if email == "" {
		email = loadedCredentials.Email
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := []entrez.Option{
		entrez.WithMolecule(molecule),
		entrez.WithValidation(validation),
		entrez.WithVerbose(verbose),
		entrez.WithOutDir(stringSetting(cmd, "out-dir")),
		entrez.WithAPIKey(apiKey),
		entrez.WithEmail(email),
	}
	if validation != entrez.ValidationNone {
		opts = append(opts, entrez.WithParser(seqio.Parser{}))
	}
	cfg, err := entrez.NewConfig(opts...)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: durationSetting(cmd, "timeout")}
	batchOpts := entrez.BatchOptions{Delay: durationSetting(cmd, "delay")}

	result := entrez.DownloadBatch(client, reqs, cfg, batchOpts, os.Stdout)

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := manifest.WriteReport(reportPath, manifest.NewReport(cfg, result)); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Wrote report:", reportPath)
	}

	if ledgerPath := stringSetting(cmd, "ledger"); ledgerPath != "" {
		if err := recordOutcomes(ledgerPath, cfg, result); err != nil {
			return err
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d download(s) failed", result.Failed)
	}
	return nil
}

// assembleRequests builds the download list from command-line accessions and
// an optional list file. The returned molecule override is non-empty when a
// YAML manifest pins one. An explicit output base only makes sense for a
// single accession.
func assembleRequests(args []string, fromFile, out string) ([]entrez.Request, string, error) {
	var reqs []entrez.Request
	var molecule string

	for _, id := range args {
		reqs = append(reqs, entrez.Request{ID: id})
	}
	if fromFile != "" {
		m, err := manifest.Read(fromFile)
		if err != nil {
			return nil, "", err
		}
		molecule = m.Molecule
		for _, e := range m.Accessions {
			reqs = append(reqs, entrez.Request{ID: e.ID, Out: e.Out})
		}
	}

	if len(reqs) == 0 {
		return nil, "", fmt.Errorf("provide one or more accessions, or --from-file")
	}
	if out != "" {
		if len(reqs) > 1 {
			return nil, "", fmt.Errorf("--out applies to a single accession, got %d", len(reqs))
		}
		reqs[0].Out = out
	}
	return reqs, molecule, nil
}

// recordOutcomes appends each batch item to the ledger at path.
func recordOutcomes(path string, cfg *entrez.Config, result entrez.BatchResult) error {
	store, err := ledger.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, item := range result.Items {
		e := ledger.Entry{
			Accession: item.Accession,
			File:      item.File,
			Molecule:  string(cfg.Molecule()),
			Status:    manifest.StatusOK,
		}
		if item.Err != nil {
			e.Status = manifest.StatusFailed
			e.Message = item.Err.Error()
		}
		if err := store.Record(e); err != nil {
			return err
		}
	}
	return nil
}
