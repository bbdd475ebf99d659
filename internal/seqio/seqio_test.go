// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package seqio

import (
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("fasta"); err != nil || f != FormatFasta {
		t.Errorf("ParseFormat(fasta) = %q, %v", f, err)
	}
	if f, err := ParseFormat("genbank"); err != nil || f != FormatGenBank {
		t.Errorf("ParseFormat(genbank) = %q, %v", f, err)
	}
	if _, err := ParseFormat("embl"); err == nil {
		t.Error("ParseFormat(embl) should fail")
	}
}

func TestNewReaderUnknownFormat(t *testing.T) {
	if _, err := NewReader(strings.NewReader(""), Format("embl")); err == nil {
		t.Error("NewReader should reject unknown formats")
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		wantErr string
	}{
		{
			name: "valid",
			rec:  Record{ID: "X1", Seq: []byte("ACGTacgt")},
		},
		{
			name: "valid with declared length and features",
			rec: Record{
				ID: "X2", Seq: []byte("ACGTACGT"), Length: 8,
				Features: []Feature{{Key: "gene", Location: "2..7", From: 2, To: 7}},
			},
		},
		{
			name: "protein with stop and gap",
			rec:  Record{ID: "P1", Seq: []byte("MAGIC-WAND*")},
		},
		{
			name:    "missing identifier",
			rec:     Record{Seq: []byte("ACGT")},
			wantErr: "no identifier",
		},
		{
			name:    "empty sequence",
			rec:     Record{ID: "X3"},
			wantErr: "empty sequence",
		},
		{
			name:    "invalid sequence byte",
			rec:     Record{ID: "X4", Seq: []byte("ACG7")},
			wantErr: "invalid sequence byte",
		},
		{
			name:    "declared length mismatch",
			rec:     Record{ID: "X5", Seq: []byte("ACGT"), Length: 8},
			wantErr: "declares length",
		},
		{
			name: "feature past sequence end",
			rec: Record{
				ID: "X6", Seq: []byte("ACGT"),
				Features: []Feature{{Key: "CDS", Location: "2..9", From: 2, To: 9}},
			},
			wantErr: "runs past",
		},
		{
			name: "inverted feature span",
			rec: Record{
				ID: "X7", Seq: []byte("ACGT"),
				Features: []Feature{{Key: "CDS", Location: "3..1", From: 3, To: 1}},
			},
			wantErr: "malformed span",
		},
		{
			name: "unparsed compound span is tolerated",
			rec: Record{
				ID: "X8", Seq: []byte("ACGT"),
				Features: []Feature{{Key: "CDS", Location: "join(1..2,3..4)"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(&tt.rec)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Check() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Check() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Check() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestParserReadsBothFormats(t *testing.T) {
	var p Parser

	r, err := p.NewReader(strings.NewReader(">x desc\nACGT\n"), FormatFasta)
	if err != nil {
		t.Fatalf("NewReader(fasta) error = %v", err)
	}
	rec, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if err := p.Check(rec); err != nil {
		t.Errorf("Check() error = %v", err)
	}

	r, err = p.NewReader(strings.NewReader(gbkRecord), FormatGenBank)
	if err != nil {
		t.Fatalf("NewReader(genbank) error = %v", err)
	}
	if _, err := r.Read(); err != nil {
		t.Errorf("Read() error = %v", err)
	}
}
