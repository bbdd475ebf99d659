// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/pythseq/ncbi-acc-download/internal/seqio"
)

func TestBuildParams(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	want := url.Values{
		"tool":    {"ncbi-acc-download"},
		"retmode": {"text"},
		"rettype": {"gbwithparts"},
		"id":      {"TEST"},
		"db":      {"nucleotide"},
	}
	if got := BuildParams("TEST", cfg); !reflect.DeepEqual(got, want) {
		t.Errorf("BuildParams(nucleotide) = %v, want %v", got, want)
	}

	cfg, err = NewConfig(WithMolecule(MoleculeProtein))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	want = url.Values{
		"tool":    {"ncbi-acc-download"},
		"retmode": {"text"},
		"rettype": {"fasta"},
		"id":      {"TEST"},
		"db":      {"protein"},
	}
	if got := BuildParams("TEST", cfg); !reflect.DeepEqual(got, want) {
		t.Errorf("BuildParams(protein) = %v, want %v", got, want)
	}
}

func TestBuildParamsCredentials(t *testing.T) {
	cfg, err := NewConfig(WithAPIKey("abc123"), WithEmail("user@example.org"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	params := BuildParams("TEST", cfg)
	if got := params.Get("api_key"); got != "abc123" {
		t.Errorf("api_key = %q, want %q", got, "abc123")
	}
	if got := params.Get("email"); got != "user@example.org" {
		t.Errorf("email = %q, want %q", got, "user@example.org")
	}
	if len(params) != 7 {
		t.Errorf("len(params) = %d, want 7", len(params))
	}
}

func TestGenerateFilename(t *testing.T) {
	tests := []struct {
		name string
		db   string
		id   string
		base string
		want string
	}{
		{"nucleotide with base", "nucleotide", "TEST", "foo", "foo.gbk"},
		{"protein without base", "protein", "TEST", "", "TEST.fa"},
		{"nucleotide without base", "nucleotide", "TEST", "", "TEST.gbk"},
		{"protein with path base", "protein", "TEST", "out/bar", "out/bar.fa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := url.Values{}
			params.Set("id", tt.id)
			params.Set("db", tt.db)
			if got := GenerateFilename(params, tt.base); got != tt.want {
				t.Errorf("GenerateFilename(db=%s, base=%q) = %q, want %q", tt.db, tt.base, got, tt.want)
			}
		})
	}
}

func TestParseMolecule(t *testing.T) {
	if m, err := ParseMolecule("nucleotide"); err != nil || m != MoleculeNucleotide {
		t.Errorf("ParseMolecule(nucleotide) = %q, %v", m, err)
	}
	if m, err := ParseMolecule("protein"); err != nil || m != MoleculeProtein {
		t.Errorf("ParseMolecule(protein) = %q, %v", m, err)
	}
	if _, err := ParseMolecule("rna"); err == nil {
		t.Error("ParseMolecule(rna) should fail")
	}
}

func TestParseValidationMode(t *testing.T) {
	for _, valid := range []string{"none", "loads", "checks"} {
		if _, err := ParseValidationMode(valid); err != nil {
			t.Errorf("ParseValidationMode(%s) error = %v", valid, err)
		}
	}
	if _, err := ParseValidationMode("all"); err == nil {
		t.Error("ParseValidationMode(all) should fail")
	}
}

func TestMoleculeFormat(t *testing.T) {
	if got := MoleculeNucleotide.Format(); got != seqio.FormatGenBank {
		t.Errorf("nucleotide format = %q, want genbank", got)
	}
	if got := MoleculeProtein.Format(); got != seqio.FormatFasta {
		t.Errorf("protein format = %q, want fasta", got)
	}
}

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Molecule() != MoleculeNucleotide {
		t.Errorf("molecule = %q, want nucleotide", cfg.Molecule())
	}
	if cfg.Validation() != ValidationNone {
		t.Errorf("validation = %q, want none", cfg.Validation())
	}
	if cfg.emit == nil {
		t.Error("emit should default to a usable function")
	}
	// The quiet default discards markers without touching stdout.
	cfg.emit(".")
}

func TestNewConfigValidationRequiresParser(t *testing.T) {
	for _, mode := range []ValidationMode{ValidationLoads, ValidationChecks} {
		_, err := NewConfig(WithValidation(mode))
		if err == nil {
			t.Fatalf("NewConfig(validation=%s) succeeded without a parser", mode)
		}
		if !errors.Is(err, ErrParserUnavailable) {
			t.Errorf("NewConfig(validation=%s) error = %v, want ErrParserUnavailable", mode, err)
		}
	}

	if _, err := NewConfig(WithValidation(ValidationChecks), WithParser(seqio.Parser{})); err != nil {
		t.Errorf("NewConfig with parser error = %v", err)
	}
}
