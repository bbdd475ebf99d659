// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package seqio

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestFastaSingleRecord(t *testing.T) {
	in := ">sp|P12345| Test protein fragment\nMAGIC\nWAND\n"

	r := newFastaReader(strings.NewReader(in))
	rec, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if rec.ID != "sp|P12345|" {
		t.Errorf("ID = %q, want %q", rec.ID, "sp|P12345|")
	}
	if rec.Description != "Test protein fragment" {
		t.Errorf("Description = %q, want %q", rec.Description, "Test protein fragment")
	}
	if string(rec.Seq) != "MAGICWAND" {
		t.Errorf("Seq = %q, want %q", rec.Seq, "MAGICWAND")
	}

	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Errorf("second Read() error = %v, want io.EOF", err)
	}
}

func TestFastaMultipleRecords(t *testing.T) {
	in := ">NM_001 first\nacgt\nacgt\n\n>NM_002\nggcc\n"

	r := newFastaReader(strings.NewReader(in))

	rec, err := r.Read()
	if err != nil {
		t.Fatalf("first Read() error = %v", err)
	}
	if rec.ID != "NM_001" || string(rec.Seq) != "acgtacgt" {
		t.Errorf("first record = %q/%q, want NM_001/acgtacgt", rec.ID, rec.Seq)
	}

	rec, err = r.Read()
	if err != nil {
		t.Fatalf("second Read() error = %v", err)
	}
	if rec.ID != "NM_002" || rec.Description != "" || string(rec.Seq) != "ggcc" {
		t.Errorf("second record = %q/%q/%q, want NM_002 with sequence ggcc", rec.ID, rec.Description, rec.Seq)
	}

	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Errorf("third Read() error = %v, want io.EOF", err)
	}
}

func TestFastaRejectsNonFastaContent(t *testing.T) {
	// The shape of an Entrez error page that slipped past the marker scan.
	in := "ID list is empty! Possibly it has no correct IDs.\n"

	r := newFastaReader(strings.NewReader(in))
	_, err := r.Read()
	if err == nil {
		t.Fatal("Read() succeeded on non-FASTA content")
	}
	if !strings.Contains(err.Error(), "expected '>'") {
		t.Errorf("error = %v, want mention of missing '>' header", err)
	}
}

func TestFastaEmptyInput(t *testing.T) {
	r := newFastaReader(strings.NewReader(""))
	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Errorf("Read() error = %v, want io.EOF", err)
	}
}

func TestFastaHeaderWithoutSequence(t *testing.T) {
	r := newFastaReader(strings.NewReader(">empty\n"))

	rec, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if rec.ID != "empty" || len(rec.Seq) != 0 {
		t.Errorf("record = %q with %d bases, want empty with none", rec.ID, len(rec.Seq))
	}
	// The reader tolerates it; the consistency check does not.
	if err := Check(rec); err == nil {
		t.Error("Check() accepted a record with no sequence")
	}
}
