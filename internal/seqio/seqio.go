// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package seqio reads sequence records from the two flat-file formats the
// downloader produces: FASTA and GenBank. It exists so that downloaded files
// can be checked for parseability and internal consistency without pulling a
// full bioinformatics toolkit into the download pipeline.
package seqio

import (
	"errors"
	"fmt"
	"io"
)

// Format names a supported sequence file format.
type Format string

const (
	FormatFasta   Format = "fasta"
	FormatGenBank Format = "genbank"
)

// ParseFormat converts a user-supplied format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatFasta, FormatGenBank:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown sequence format %q (want %q or %q)", s, FormatFasta, FormatGenBank)
}

// Record is one parsed sequence entry.
type Record struct {
	// ID is the record identifier: the first word of a FASTA header, or the
	// VERSION (falling back to ACCESSION, then the LOCUS name) of a GenBank
	// record.
	ID string

	// Description is the free-text remainder of the header or DEFINITION.
	Description string

	// Seq is the sequence with whitespace and line numbering removed.
	Seq []byte

	// Length is the sequence length the file declares (GenBank LOCUS line);
	// zero when the format carries no declaration.
	Length int

	// Features holds the GenBank feature table entries, when present.
	Features []Feature
}

// Feature is one entry from a GenBank feature table.
type Feature struct {
	Key      string
	Location string

	// From and To are the 1-based bounds of the location when it is a plain
	// point or range (optionally complemented). Both are zero when the
	// location is compound and was left unparsed.
	From, To int
}

// Reader streams records from a sequence file. Read returns io.EOF after the
// final record.
type Reader interface {
	Read() (*Record, error)
}

// NewReader returns a Reader for the given format.
func NewReader(r io.Reader, format Format) (Reader, error) {
	switch format {
	case FormatFasta:
		return newFastaReader(r), nil
	case FormatGenBank:
		return newGenBankReader(r), nil
	}
	return nil, fmt.Errorf("unknown sequence format %q", format)
}

// Check verifies the structural consistency of a parsed record: it must be
// identified, carry sequence data over the NCBI alphabet, match its declared
// length, and keep every parsed feature span inside the sequence.
func Check(rec *Record) error {
	if rec.ID == "" {
		return errors.New("record has no identifier")
	}
	if len(rec.Seq) == 0 {
		return fmt.Errorf("record %s has an empty sequence", rec.ID)
	}
	for _, b := range rec.Seq {
		if !validSeqByte(b) {
			return fmt.Errorf("record %s contains invalid sequence byte %q", rec.ID, b)
		}
	}
	if rec.Length > 0 && rec.Length != len(rec.Seq) {
		return fmt.Errorf("record %s declares length %d but carries %d", rec.ID, rec.Length, len(rec.Seq))
	}
	end := rec.Length
	if end == 0 {
		end = len(rec.Seq)
	}
	for _, f := range rec.Features {
		if f.From == 0 && f.To == 0 {
			continue
		}
		if f.From < 1 || f.To < f.From {
			return fmt.Errorf("record %s: feature %s has malformed span %q", rec.ID, f.Key, f.Location)
		}
		if f.To > end {
			return fmt.Errorf("record %s: feature %s span %q runs past the sequence end", rec.ID, f.Key, f.Location)
		}
	}
	return nil
}

// validSeqByte reports whether b is allowed in sequence data. The set follows
// the NCBI conventions: letters plus the '*' stop and '-' gap markers.
func validSeqByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	case b == '*' || b == '-':
		return true
	}
	return false
}

// Parser bundles the package's readers and checks behind one value so that
// callers can treat sequence parsing as a single optional capability. The
// zero value is ready to use.
type Parser struct{}

// NewReader returns a streaming reader over the records in r.
func (Parser) NewReader(r io.Reader, format Format) (Reader, error) {
	return NewReader(r, format)
}

// Check verifies the structural consistency of a parsed record.
func (Parser) Check(rec *Record) error {
	return Check(rec)
}
