// Package entrez downloads sequence records from the NCBI Entrez efetch
// service by accession, streaming each response to a local file while
// scanning it for the service's error markers. When a sequence parser
// capability is supplied, completed files can additionally be validated as
// parseable GenBank or FASTA data.
package entrez

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DownloadToFile fetches one accession and writes it to disk, returning the
// path written. An empty filename derives the name from the accession and
// places it under the configured output directory; an explicit filename is
// used as given, with only the format extension appended. There is no retry:
// errors propagate after a single attempt, and a file aborted mid-write is
// left in place.
func DownloadToFile(client *http.Client, id string, cfg *Config, filename string) (string, error) {
	params := BuildParams(id, cfg)

	resp, err := GetStream(client, params)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	path := GenerateFilename(params, filename)
	if filename == "" && cfg.outDir != "" {
		if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", cfg.outDir, err)
		}
		path = filepath.Join(cfg.outDir, path)
	}

	fh, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	werr := ValidateAndWrite(resp.Body, fh, id, cfg)
	cerr := fh.Close()
	if werr != nil {
		return "", werr
	}
	if cerr != nil {
		return "", fmt.Errorf("closing %s: %w", path, cerr)
	}

	if cfg.validation != ValidationNone {
		if err := validateFile(path, id, cfg); err != nil {
			return "", err
		}
	}
	return path, nil
}

// Request names one accession to download and, optionally, the output base
// to write it to.
type Request struct {
	ID  string
	Out string
}

// ItemResult records the outcome for one accession in a batch.
type ItemResult struct {
	Accession string
	File      string
	Err       error
}

// BatchResult holds the outcome of a batch download run.
type BatchResult struct {
	Downloaded int
	Failed     int
	Items      []ItemResult
}

// Total returns the number of accessions processed.
func (r BatchResult) Total() int {
	return r.Downloaded + r.Failed
}

// HasFailures reports whether any accession failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// BatchOptions adjusts a batch run.
type BatchOptions struct {
	// Delay is slept between consecutive downloads.
	Delay time.Duration
}

// DownloadBatch processes requests sequentially, printing per-item status to
// w and returning a summary. It continues after individual failures and
// applies the configured delay between consecutive downloads.
func DownloadBatch(client *http.Client, reqs []Request, cfg *Config, opts BatchOptions, w io.Writer) BatchResult {
	var result BatchResult
	for i, req := range reqs {
		if i > 0 && opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}
		fmt.Fprintf(w, "downloading: %s (%s)\n", req.ID, cfg.molecule)
		path, err := DownloadToFile(client, req.ID, cfg, req.Out)
		if err != nil {
			fmt.Fprintf(w, "failed: %s (%v)\n", req.ID, err)
			result.Failed++
			result.Items = append(result.Items, ItemResult{Accession: req.ID, Err: err})
			continue
		}
		fmt.Fprintf(w, "saved: %s\n", path)
		result.Downloaded++
		result.Items = append(result.Items, ItemResult{Accession: req.ID, File: path})
	}
	fmt.Fprintf(w, "\nBatch summary: %d downloaded, %d failed (total: %d)\n",
		result.Downloaded, result.Failed, result.Total())
	return result
}
