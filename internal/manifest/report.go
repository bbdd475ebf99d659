// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pythseq/ncbi-acc-download/internal/entrez"
)

// Report is the on-disk record of one batch run. A saved report can be
// reloaded later to see which accessions made it and which did not.
type Report struct {
	Molecule   string        `yaml:"molecule"`
	Validation string        `yaml:"validation"`
	Timestamp  time.Time     `yaml:"timestamp"`
	Summary    ReportSummary `yaml:"summary"`
	Items      []ReportItem  `yaml:"items"`
}

// ReportSummary stores the batch counters.
type ReportSummary struct {
	Downloaded int `yaml:"downloaded"`
	Failed     int `yaml:"failed"`
	Total      int `yaml:"total"`
}

// ReportItem stores one accession's outcome.
type ReportItem struct {
	Accession string `yaml:"accession"`
	File      string `yaml:"file,omitempty"`
	Status    string `yaml:"status"`
	Error     string `yaml:"error,omitempty"`
}

// Item status values.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// NewReport summarizes a batch outcome for serialization.
func NewReport(cfg *entrez.Config, result entrez.BatchResult) *Report {
	rep := &Report{
		Molecule:   string(cfg.Molecule()),
		Validation: string(cfg.Validation()),
		Timestamp:  time.Now(),
		Summary: ReportSummary{
			Downloaded: result.Downloaded,
			Failed:     result.Failed,
			Total:      result.Total(),
		},
	}
	for _, item := range result.Items {
		ri := ReportItem{Accession: item.Accession, File: item.File, Status: StatusOK}
		if item.Err != nil {
			ri.Status = StatusFailed
			ri.Error = item.Err.Error()
		}
		rep.Items = append(rep.Items, ri)
	}
	return rep
}

// WriteReport saves a batch report to a YAML file.
func WriteReport(path string, rep *Report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReport loads a previously saved batch report from disk.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var rep Report
	if err := yaml.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &rep, nil
}
