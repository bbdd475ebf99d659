// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"fmt"
	"io"
	"os"

	"github.com/pythseq/ncbi-acc-download/internal/seqio"
)

// Molecule selects which Entrez database records are fetched from.
type Molecule string

const (
	MoleculeNucleotide Molecule = "nucleotide"
	MoleculeProtein    Molecule = "protein"
)

// ParseMolecule converts a user-supplied molecule name into a Molecule.
func ParseMolecule(s string) (Molecule, error) {
	switch Molecule(s) {
	case MoleculeNucleotide, MoleculeProtein:
		return Molecule(s), nil
	}
	return "", fmt.Errorf("unknown molecule type %q (want %q or %q)", s, MoleculeNucleotide, MoleculeProtein)
}

// Format returns the flat-file format the molecule's records download in.
// Nucleotide records come back as GenBank flat files, proteins as FASTA.
func (m Molecule) Format() seqio.Format {
	if m == MoleculeProtein {
		return seqio.FormatFasta
	}
	return seqio.FormatGenBank
}

// ValidationMode selects how much checking a completed download gets beyond
// the error-marker scan.
type ValidationMode string

const (
	ValidationNone ValidationMode = "none"

	// ValidationLoads requires the written file to parse with at least one
	// sequence record.
	ValidationLoads ValidationMode = "loads"

	// ValidationChecks requires loads plus a structural consistency check on
	// every record.
	ValidationChecks ValidationMode = "checks"
)

// ParseValidationMode converts a user-supplied validation mode name.
func ParseValidationMode(s string) (ValidationMode, error) {
	switch ValidationMode(s) {
	case ValidationNone, ValidationLoads, ValidationChecks:
		return ValidationMode(s), nil
	}
	return "", fmt.Errorf("unknown validation mode %q (want %q, %q or %q)",
		s, ValidationNone, ValidationLoads, ValidationChecks)
}

// EmitFunc receives progress marker output during streaming.
type EmitFunc func(s string)

// SequenceParser is the optional capability extended validation needs.
// seqio.Parser satisfies it.
type SequenceParser interface {
	NewReader(r io.Reader, format seqio.Format) (seqio.Reader, error)
	Check(rec *seqio.Record) error
}

// Config carries the settings for a download run. Fields are fixed once
// NewConfig returns.
type Config struct {
	molecule   Molecule
	validation ValidationMode
	verbose    bool
	emit       EmitFunc
	parser     SequenceParser
	apiKey     string
	email      string
	outDir     string
}

// Option adjusts a Config during construction.
type Option func(*Config)

func WithMolecule(m Molecule) Option {
	return func(c *Config) { c.molecule = m }
}

func WithValidation(mode ValidationMode) Option {
	return func(c *Config) { c.validation = mode }
}

func WithVerbose(v bool) Option {
	return func(c *Config) { c.verbose = v }
}

// WithEmit overrides the progress marker destination.
func WithEmit(emit EmitFunc) Option {
	return func(c *Config) { c.emit = emit }
}

// WithParser supplies the sequence parser capability extended validation
// requires.
func WithParser(p SequenceParser) Option {
	return func(c *Config) { c.parser = p }
}

// WithAPIKey attaches an Entrez API key to every request.
func WithAPIKey(key string) Option {
	return func(c *Config) { c.apiKey = key }
}

// WithEmail attaches a contact email address to every request.
func WithEmail(email string) Option {
	return func(c *Config) { c.email = email }
}

// WithOutDir places generated filenames under dir. Explicit filenames are
// not affected.
func WithOutDir(dir string) Option {
	return func(c *Config) { c.outDir = dir }
}

// NewConfig builds a Config from defaults plus options. Defaults: nucleotide
// molecule, no extended validation, progress markers to stdout when verbose
// and discarded otherwise. Requesting extended validation without a parser
// capability fails before any network or file activity.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		molecule:   MoleculeNucleotide,
		validation: ValidationNone,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.validation != ValidationNone && cfg.parser == nil {
		return nil, fmt.Errorf("extended validation %q: %w", cfg.validation, ErrParserUnavailable)
	}

	if cfg.emit == nil {
		if cfg.verbose {
			cfg.emit = func(s string) { fmt.Fprint(os.Stdout, s) }
		} else {
			cfg.emit = func(string) {}
		}
	}
	return cfg, nil
}

// Molecule returns the configured molecule kind.
func (c *Config) Molecule() Molecule { return c.molecule }

// Validation returns the configured validation mode.
func (c *Config) Validation() ValidationMode { return c.validation }
